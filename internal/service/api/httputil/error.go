package httputil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	applog "github.com/darkkaiser/setting-server/pkg/log"

	"github.com/darkkaiser/setting-server/internal/service/api/constants"
	"github.com/darkkaiser/setting-server/internal/service/api/model/response"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 핸들러나 미들웨어에서 반환된 에러를 일관된 형식(ErrorResponse)의
// JSON 응답으로 변환하여 클라이언트에게 반환합니다.
func ErrorHandler(err error, c echo.Context) {
	logger := applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
		"method": c.Request().Method,
		"uri":    c.Request().RequestURI,
	})

	statusCode := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var httpError *echo.HTTPError
	if errors.As(err, &httpError) {
		statusCode = httpError.Code

		switch m := httpError.Message.(type) {
		case response.ErrorResponse:
			message = m.Message
		case string:
			message = m
		}

		// Echo 라우터가 생성하는 기본 404 메시지를 표준 메시지로 정규화한다.
		if statusCode == http.StatusNotFound {
			message = constants.ErrMsgNotFound
		}
	}

	if statusCode >= http.StatusInternalServerError {
		logger.WithError(err).Errorf("API 요청 처리 중 오류가 발생하였습니다 (%d)", statusCode)
	} else {
		logger.WithError(err).Warnf("API 요청 처리가 실패하였습니다 (%d)", statusCode)
	}

	// 이미 응답이 전송된 경우에는 추가로 응답을 보낼 수 없다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(statusCode); err != nil {
			logger.WithError(err).Error("에러 응답 전송이 실패하였습니다")
		}
		return
	}

	if err := c.JSON(statusCode, response.ErrorResponse{ResultCode: statusCode, Message: message}); err != nil {
		logger.WithError(err).Error("에러 응답 전송이 실패하였습니다")
	}
}
