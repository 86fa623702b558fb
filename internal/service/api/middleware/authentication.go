package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	applog "github.com/darkkaiser/setting-server/pkg/log"

	"github.com/darkkaiser/setting-server/internal/service/api/auth"
	"github.com/darkkaiser/setting-server/internal/service/api/constants"
)

// componentAuth 인증 미들웨어의 로깅용 컴포넌트 이름
const componentAuth = "api.middleware.auth"

// RequireAuthentication 애플리케이션 인증을 수행하는 미들웨어를 반환합니다.
//
// App Key는 X-App-Key 헤더를 우선 사용하고, 없으면 app_key 쿼리 파라미터를
// 레거시 방식으로 허용합니다. Application ID는 X-Application-Id 헤더를 우선
// 사용하고, 없으면 요청 본문(JSON)의 application_id 필드를 파싱합니다.
// 본문을 파싱한 경우에는 다음 핸들러에서 다시 읽을 수 있도록 복원합니다.
//
// 인증에 성공하면 Application 객체를 요청 컨텍스트에 저장합니다.
// authenticator가 nil이면 panic이 발생합니다.
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic("Authenticator는 필수입니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			appKey := extractAppKey(c)
			if appKey == "" {
				return ErrAppKeyRequired
			}

			applicationID, err := extractApplicationID(c)
			if err != nil {
				return err
			}
			if applicationID == "" {
				return ErrApplicationIDRequired
			}

			application, err := authenticator.Authenticate(applicationID, appKey)
			if err != nil {
				return err
			}

			auth.SetAuthenticatedApplication(c, application)

			return next(c)
		}
	}
}

// extractAppKey App Key를 추출합니다. (X-App-Key 헤더 우선, app_key 쿼리 파라미터 폴백)
func extractAppKey(c echo.Context) string {
	appKey := c.Request().Header.Get(constants.HeaderXAppKey)
	if appKey == "" {
		appKey = c.QueryParam(constants.QueryParamAppKey)

		// 레거시 방식 사용 시 경고 로그
		if appKey != "" {
			applog.WithComponentAndFields(componentAuth, applog.Fields{
				"method":    c.Request().Method,
				"path":      c.Path(),
				"remote_ip": c.RealIP(),
			}).Warn("보안 경고: 쿼리 파라미터로 App Key 전달됨 (헤더 사용 권장)")
		}
	}
	return appKey
}

// extractApplicationID Application ID를 추출합니다.
// (X-Application-Id 헤더 우선, 요청 본문 폴백)
func extractApplicationID(c echo.Context) (string, error) {
	applicationID := c.Request().Header.Get(constants.HeaderXApplicationID)
	if applicationID != "" {
		return applicationID, nil
	}

	// 헤더가 없는 경우에만 불가피하게 Body를 파싱한다.
	bodyBytes, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit 미들웨어 또는 http.MaxBytesReader에 의해 요청 본문 크기가
		// 제한된 경우 발생하는 에러들을 표준 413 에러로 정규화한다.
		if _, ok := err.(*http.MaxBytesError); ok {
			return "", ErrBodyTooLarge
		}
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusRequestEntityTooLarge {
			return "", ErrBodyTooLarge
		}
		return "", ErrBodyReadFailed
	}
	c.Request().Body.Close()

	if len(bodyBytes) == 0 {
		return "", ErrEmptyBody
	}

	// 다음 핸들러에서 다시 읽을 수 있도록 Body를 복원한다.
	c.Request().Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var authRequest struct {
		ApplicationID string `json:"application_id"`
	}
	if err := json.Unmarshal(bodyBytes, &authRequest); err != nil {
		return "", ErrInvalidJSON
	}

	return authRequest.ApplicationID, nil
}
