package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaskSensitiveQueryParams 민감한 쿼리 파라미터 마스킹을 검증합니다.
func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "민감 파라미터가 없으면 원본을 반환한다",
			uri:      "/api/v1/settings/uptime?foo=bar",
			expected: "/api/v1/settings/uptime?foo=bar",
		},
		{
			name:     "app_key 마스킹",
			uri:      "/api/v1/settings/uptime?app_key=secret-key-0001",
			expected: "/api/v1/settings/uptime?app_key=secr%2A%2A%2A0001",
		},
		{
			name:     "token 마스킹",
			uri:      "/path?token=abcdefgh",
			expected: "/path?token=abcd%2A%2A%2A",
		},
		{
			name:     "짧은 값은 전체 마스킹",
			uri:      "/path?password=ab",
			expected: "/path?password=%2A%2A%2A",
		},
		{
			name:     "쿼리가 없는 URI",
			uri:      "/api/v1/settings/uptime",
			expected: "/api/v1/settings/uptime",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}

// TestHTTPLogger 미들웨어가 핸들러의 응답을 손상시키지 않는지 검증합니다.
func TestHTTPLogger(t *testing.T) {
	t.Parallel()

	e := echo.New()

	handler := HTTPLogger()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/?app_key=secret-key-0001", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

// TestHTTPLogger_HandlerError 핸들러 에러가 에러 핸들러를 거쳐 응답에 반영되는지
// 검증합니다.
func TestHTTPLogger_HandlerError(t *testing.T) {
	t.Parallel()

	e := echo.New()

	handler := HTTPLogger()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
