package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/setting-server/internal/platform/memdevice"
	"github.com/darkkaiser/setting-server/internal/service/api/model/response"
	v1response "github.com/darkkaiser/setting-server/internal/service/api/v1/model/response"
)

// doValueRequest key 경로 파라미터를 포함하여 핸들러를 호출합니다.
func doValueRequest(t *testing.T, h echo.HandlerFunc, method, key, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()

	req := httptest.NewRequest(method, "/api/v1/settings/values/"+key, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues(key)

	return rec, h(c)
}

// TestGetRawValueHandler 설정 값 직접 조회 엔드포인트를 검증합니다.
func TestGetRawValueHandler(t *testing.T) {
	opts := memdevice.DefaultOptions()
	opts.InitialSettings = map[string]int{"screen_brightness": 77}

	h, _ := newTestHandler(t, opts)

	t.Run("존재하는 키를 조회한다", func(t *testing.T) {
		rec, err := doValueRequest(t, h.GetRawValueHandler, http.MethodGet, "screen_brightness", "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.RawValueResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, "screen_brightness", res.Key)
		assert.Equal(t, 77, res.Value)
	})

	t.Run("camelCase 키는 snake_case로 정규화된다", func(t *testing.T) {
		rec, err := doValueRequest(t, h.GetRawValueHandler, http.MethodGet, "screenBrightness", "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.RawValueResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, "screen_brightness", res.Key)
		assert.Equal(t, 77, res.Value)
	})

	t.Run("존재하지 않는 키는 404", func(t *testing.T) {
		_, err := doValueRequest(t, h.GetRawValueHandler, http.MethodGet, "unknown_key", "")
		assert.Equal(t, http.StatusNotFound, errorStatusOf(t, err))
	})

	t.Run("빈 키는 400", func(t *testing.T) {
		_, err := doValueRequest(t, h.GetRawValueHandler, http.MethodGet, "", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)

		errRes, ok := httpErr.Message.(response.ErrorResponse)
		require.True(t, ok)
		assert.Equal(t, "설정 키는 필수입니다", errRes.Message)
	})
}

// TestSetRawValueHandler 설정 값 직접 변경 엔드포인트를 검증합니다.
func TestSetRawValueHandler(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	t.Run("값을 기록하고 다시 조회할 수 있다", func(t *testing.T) {
		rec, err := doValueRequest(t, h.SetRawValueHandler, http.MethodPut, "custom_setting", `{"value": 42}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.RawValueResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, "custom_setting", res.Key)
		assert.Equal(t, 42, res.Value)

		rec, err = doValueRequest(t, h.GetRawValueHandler, http.MethodGet, "customSetting", "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.Equal(t, 42, res.Value)
	})

	t.Run("잘못된 요청은 400으로 거부된다", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			message string
		}{
			{"JSON이 아닌 본문", `not a json`, "잘못된 JSON 형식입니다"},
			{"value 필드 누락", `{"other": 1}`, "value는 필수입니다"},
			{"정수가 아닌 value", `{"value": "abc"}`, "value는 정수여야 합니다"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := doValueRequest(t, h.SetRawValueHandler, http.MethodPut, "custom_setting", tt.body)
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))

				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)

				errRes, ok := httpErr.Message.(response.ErrorResponse)
				require.True(t, ok)
				assert.Equal(t, tt.message, errRes.Message)
			})
		}
	})
}
