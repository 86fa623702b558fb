// Package httputil HTTP 응답 생성과 에러 처리를 위한 유틸리티를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/setting-server/internal/service/api/model/response"
)

// Success 성공 응답(result_code=0)을 클라이언트에게 반환합니다.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{ResultCode: 0})
}

// SuccessWith 성공 응답과 함께 조회 결과 데이터를 반환합니다.
func SuccessWith(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError 401 Unauthorized 에러를 생성합니다.
func NewUnauthorizedError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewForbiddenError 403 Forbidden 에러를 생성합니다.
func NewForbiddenError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusForbidden, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다.
func NewNotFoundError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewRequestEntityTooLargeError 413 Request Entity Too Large 에러를 생성합니다.
func NewRequestEntityTooLargeError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusRequestEntityTooLarge, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
func NewTooManyRequestsError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다.
func NewInternalServerError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewGatewayTimeoutError 504 Gateway Timeout 에러를 생성합니다.
func NewGatewayTimeoutError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusGatewayTimeout, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다.
func NewServiceUnavailableError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

func newHTTPError(statusCode int, message string) *echo.HTTPError {
	return echo.NewHTTPError(statusCode, response.ErrorResponse{
		ResultCode: statusCode,
		Message:    message,
	})
}
