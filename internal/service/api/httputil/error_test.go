package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/setting-server/internal/service/api/constants"
	"github.com/darkkaiser/setting-server/internal/service/api/model/response"
)

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var errorResponse response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResponse))

	return errorResponse
}

// TestErrorHandler 에러 유형별 응답 변환을 검증합니다.
func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "ErrorResponse 메시지를 가진 HTTPError",
			err:             NewBadRequestError("잘못된 요청입니다"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "잘못된 요청입니다",
		},
		{
			name:            "문자열 메시지를 가진 HTTPError",
			err:             echo.NewHTTPError(http.StatusForbidden, "접근이 거부되었습니다"),
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "접근이 거부되었습니다",
		},
		{
			name:            "404는 표준 메시지로 정규화된다",
			err:             echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: constants.ErrMsgNotFound,
		},
		{
			name:            "일반 에러는 500으로 처리된다",
			err:             errors.New("unexpected failure"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: constants.ErrMsgInternalServer,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			ErrorHandler(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			errorResponse := decodeErrorResponse(t, rec)
			assert.Equal(t, tt.expectedStatus, errorResponse.ResultCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.Message)
		})
	}
}

// TestErrorHandler_HeadRequest HEAD 요청에는 본문 없이 상태 코드만 반환되는지 검증합니다.
func TestErrorHandler_HeadRequest(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()

	ErrorHandler(NewBadRequestError("잘못된 요청입니다"), e.NewContext(req, rec))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestErrorHandler_CommittedResponse 이미 응답이 전송된 요청에는 추가 응답을
// 보내지 않는지 검증합니다.
func TestErrorHandler_CommittedResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "already sent"))

	ErrorHandler(NewInternalServerError("오류"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already sent", rec.Body.String())
}

// TestSuccess 성공 응답 형식을 검증합니다.
func TestSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, Success(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result_code": 0}`, rec.Body.String())
}

// TestNewHTTPErrors 에러 생성 함수들의 상태 코드와 메시지 형식을 검증합니다.
func TestNewHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		construct    func(string) *echo.HTTPError
		expectedCode int
	}{
		{"BadRequest", NewBadRequestError, http.StatusBadRequest},
		{"Unauthorized", NewUnauthorizedError, http.StatusUnauthorized},
		{"Forbidden", NewForbiddenError, http.StatusForbidden},
		{"NotFound", NewNotFoundError, http.StatusNotFound},
		{"RequestEntityTooLarge", NewRequestEntityTooLargeError, http.StatusRequestEntityTooLarge},
		{"TooManyRequests", NewTooManyRequestsError, http.StatusTooManyRequests},
		{"InternalServer", NewInternalServerError, http.StatusInternalServerError},
		{"ServiceUnavailable", NewServiceUnavailableError, http.StatusServiceUnavailable},
		{"GatewayTimeout", NewGatewayTimeoutError, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			httpError := tt.construct("메시지")
			assert.Equal(t, tt.expectedCode, httpError.Code)

			errorResponse, ok := httpError.Message.(response.ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, errorResponse.ResultCode)
			assert.Equal(t, "메시지", errorResponse.Message)
		})
	}
}
