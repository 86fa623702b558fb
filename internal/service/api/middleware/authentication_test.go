package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/setting-server/internal/config"
	"github.com/darkkaiser/setting-server/internal/service/api/auth"
	"github.com/darkkaiser/setting-server/internal/service/api/constants"
)

func newTestAuthenticator() *auth.Authenticator {
	return auth.NewAuthenticator([]config.ApplicationConfig{
		{ID: "app1", AppKey: "secret-key-0001"},
	})
}

// okHandler 인증 통과 여부만을 확인하는 간단한 핸들러입니다.
func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// TestRequireAuthentication_NilAuthenticator Authenticator 없이 미들웨어를
// 생성하면 패닉이 발생하는지 검증합니다.
func TestRequireAuthentication_NilAuthenticator(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "Authenticator는 필수입니다", func() {
		RequireAuthentication(nil)
	})
}

// TestRequireAuthentication 헤더/쿼리/본문을 통한 인증 경로들을 검증합니다.
func TestRequireAuthentication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		setupRequest   func() *http.Request
		expectedErr    error
		expectedStatus int // expectedErr가 nil이 아니면 무시된다
	}{
		{
			name: "헤더를 통한 정상 인증",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
				req.Header.Set(constants.HeaderXApplicationID, "app1")
				return req
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "쿼리 파라미터를 통한 App Key 폴백",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/?app_key=secret-key-0001", nil)
				req.Header.Set(constants.HeaderXApplicationID, "app1")
				return req
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "요청 본문을 통한 Application ID 폴백",
			setupRequest: func() *http.Request {
				body := strings.NewReader(`{"application_id": "app1"}`)
				req := httptest.NewRequest(http.MethodPut, "/", body)
				req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
				return req
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "App Key 누락",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(constants.HeaderXApplicationID, "app1")
				return req
			},
			expectedErr: ErrAppKeyRequired,
		},
		{
			name: "Application ID 없이 빈 본문",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
				return req
			},
			expectedErr: ErrEmptyBody,
		},
		{
			name: "본문이 올바른 JSON이 아님",
			setupRequest: func() *http.Request {
				body := strings.NewReader(`not a json`)
				req := httptest.NewRequest(http.MethodPut, "/", body)
				req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
				return req
			},
			expectedErr: ErrInvalidJSON,
		},
		{
			name: "본문에 application_id 필드 누락",
			setupRequest: func() *http.Request {
				body := strings.NewReader(`{"other_field": 1}`)
				req := httptest.NewRequest(http.MethodPut, "/", body)
				req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
				return req
			},
			expectedErr: ErrApplicationIDRequired,
		},
		{
			name: "등록되지 않은 애플리케이션",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
				req.Header.Set(constants.HeaderXApplicationID, "unknown")
				return req
			},
			expectedErr: auth.ErrApplicationNotFound,
		},
		{
			name: "유효하지 않은 App Key",
			setupRequest: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(constants.HeaderXAppKey, "wrong-key")
				req.Header.Set(constants.HeaderXApplicationID, "app1")
				return req
			},
			expectedErr: auth.ErrInvalidAppKey,
		},
	}

	e := echo.New()
	handler := RequireAuthentication(newTestAuthenticator())(okHandler)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			c := e.NewContext(tt.setupRequest(), rec)

			err := handler(c)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

// TestRequireAuthentication_SetsApplication 인증 성공 시 애플리케이션 정보가
// 요청 컨텍스트에 저장되는지 검증합니다.
func TestRequireAuthentication_SetsApplication(t *testing.T) {
	t.Parallel()

	e := echo.New()

	handler := RequireAuthentication(newTestAuthenticator())(func(c echo.Context) error {
		application, err := auth.GetAuthenticatedApplication(c)
		require.NoError(t, err)
		assert.Equal(t, "app1", application.ID)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
	req.Header.Set(constants.HeaderXApplicationID, "app1")

	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRequireAuthentication_RestoresBody 본문에서 Application ID를 추출한 뒤
// 다음 핸들러가 본문을 다시 읽을 수 있는지 검증합니다.
func TestRequireAuthentication_RestoresBody(t *testing.T) {
	t.Parallel()

	e := echo.New()

	handler := RequireAuthentication(newTestAuthenticator())(func(c echo.Context) error {
		var payload struct {
			ApplicationID string `json:"application_id"`
			Value         int    `json:"value"`
		}
		require.NoError(t, c.Bind(&payload))
		assert.Equal(t, "app1", payload.ApplicationID)
		assert.Equal(t, 42, payload.Value)
		return c.NoContent(http.StatusOK)
	})

	body := strings.NewReader(`{"application_id": "app1", "value": 42}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(constants.HeaderXAppKey, "secret-key-0001")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
