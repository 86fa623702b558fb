package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/setting-server/internal/platform/memdevice"
	"github.com/darkkaiser/setting-server/internal/service/alert"
	"github.com/darkkaiser/setting-server/internal/service/api/model/response"
	"github.com/darkkaiser/setting-server/internal/service/api/v1/handler"
	v1response "github.com/darkkaiser/setting-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/setting-server/internal/service/bridge"
	"github.com/darkkaiser/setting-server/internal/service/bridge/idgen"
	"github.com/darkkaiser/setting-server/internal/service/settings"
)

// newTestHandler 인메모리 디바이스 위에서 동작하는 v1 핸들러를 생성합니다.
func newTestHandler(t *testing.T, opts memdevice.Options) (*handler.Handler, *memdevice.Device) {
	t.Helper()

	device := memdevice.New(opts)
	executor := bridge.NewExecutor(&idgen.Generator{}, device)
	device.SetHostStartHandler(executor)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, device.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	facade := settings.NewFacade(settings.Deps{
		Store:        device,
		Audio:        device,
		Connectivity: device,
		Power:        device,
		Clock:        device,
	}, executor, time.Second, alert.NewNoopSender())

	return handler.NewHandler(facade), device
}

// doJSON 핸들러를 직접 호출하고 응답 레코더를 반환합니다.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, pathParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()

	var bodyReader *strings.Reader
	if body == "" {
		bodyReader = strings.NewReader("")
	} else {
		bodyReader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, bodyReader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// errorStatusOf 핸들러가 반환한 에러의 HTTP 상태 코드를 추출합니다.
func errorStatusOf(t *testing.T, err error) int {
	t.Helper()

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr), "echo.HTTPError가 반환되어야 합니다")
	return httpErr.Code
}

// callHandler 핸들러를 호출하고 에러를 그대로 반환합니다.
func callHandler(t *testing.T, h echo.HandlerFunc, method, target, body string) error {
	t.Helper()

	e := echo.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return h(e.NewContext(req, httptest.NewRecorder()))
}

// TestNewHandler Facade 없이 핸들러를 생성하면 패닉이 발생하는지 검증합니다.
func TestNewHandler(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "Facade 객체는 필수입니다", func() {
		handler.NewHandler(nil)
	})
}

// TestScreenTimeoutHandlers 화면 꺼짐 대기 시간 조회/변경 엔드포인트를 검증합니다.
func TestScreenTimeoutHandlers(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	t.Run("설정값이 없으면 0을 반환한다", func(t *testing.T) {
		rec := doJSON(t, h.GetScreenTimeoutHandler, http.MethodGet, "/api/v1/settings/screen-timeout", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.ScreenTimeoutResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, 0, res.Seconds)
	})

	t.Run("변경 시 이전 값이 함께 반환된다", func(t *testing.T) {
		rec := doJSON(t, h.SetScreenTimeoutHandler, http.MethodPut, "/api/v1/settings/screen-timeout", `{"seconds": 30}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.ScreenTimeoutUpdatedResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, 30, res.Seconds)
		assert.Equal(t, 0, res.PreviousSeconds)

		rec = doJSON(t, h.SetScreenTimeoutHandler, http.MethodPut, "/api/v1/settings/screen-timeout", `{"seconds": 60}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.Equal(t, 60, res.Seconds)
		assert.Equal(t, 30, res.PreviousSeconds)
	})

	t.Run("seconds 필드 누락 시 400", func(t *testing.T) {
		err := callHandler(t, h.SetScreenTimeoutHandler, http.MethodPut, "/api/v1/settings/screen-timeout", `{}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})

	t.Run("음수 seconds는 400", func(t *testing.T) {
		err := callHandler(t, h.SetScreenTimeoutHandler, http.MethodPut, "/api/v1/settings/screen-timeout", `{"seconds": -1}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})

	t.Run("잘못된 본문 형식은 400", func(t *testing.T) {
		err := callHandler(t, h.SetScreenTimeoutHandler, http.MethodPut, "/api/v1/settings/screen-timeout", `{"seconds": "abc"}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})
}

// TestAirplaneModeHandlers 비행기 모드 조회/변경 엔드포인트를 검증합니다.
func TestAirplaneModeHandlers(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	rec := doJSON(t, h.GetAirplaneModeHandler, http.MethodGet, "/api/v1/settings/airplane-mode", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1response.AirplaneModeResponse
	decodeJSON(t, rec, &res)
	assert.False(t, res.Enabled)

	t.Run("enabled를 생략하면 현재 상태가 반전된다", func(t *testing.T) {
		rec := doJSON(t, h.SetAirplaneModeHandler, http.MethodPut, "/api/v1/settings/airplane-mode", `{}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.True(t, res.Enabled)
	})

	t.Run("명시된 값으로 변경된다", func(t *testing.T) {
		rec := doJSON(t, h.SetAirplaneModeHandler, http.MethodPut, "/api/v1/settings/airplane-mode", `{"enabled": false}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.False(t, res.Enabled)
	})
}

// TestRingerModeHandlers 벨소리 모드 조회/변경 엔드포인트를 검증합니다.
func TestRingerModeHandlers(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	rec := doJSON(t, h.GetRingerModeHandler, http.MethodGet, "/api/v1/settings/ringer-mode", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1response.RingerModeResponse
	decodeJSON(t, rec, &res)
	assert.Equal(t, 2, res.Mode)

	t.Run("진동 모드로 변경", func(t *testing.T) {
		rec := doJSON(t, h.SetRingerModeHandler, http.MethodPut, "/api/v1/settings/ringer-mode", `{"mode": 1}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.Equal(t, 1, res.Mode)
	})

	t.Run("범위를 벗어난 모드는 400", func(t *testing.T) {
		err := callHandler(t, h.SetRingerModeHandler, http.MethodPut, "/api/v1/settings/ringer-mode", `{"mode": 3}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})

	t.Run("mode 필드 누락 시 400", func(t *testing.T) {
		err := callHandler(t, h.SetRingerModeHandler, http.MethodPut, "/api/v1/settings/ringer-mode", `{}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})
}

// TestRingerSilentModeHandlers 무음 모드 조회/변경 엔드포인트를 검증합니다.
func TestRingerSilentModeHandlers(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	rec := doJSON(t, h.GetRingerSilentModeHandler, http.MethodGet, "/api/v1/settings/ringer-silent-mode", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1response.RingerSilentModeResponse
	decodeJSON(t, rec, &res)
	assert.False(t, res.Enabled)

	rec = doJSON(t, h.SetRingerSilentModeHandler, http.MethodPut, "/api/v1/settings/ringer-silent-mode", `{"enabled": true}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeJSON(t, rec, &res)
	assert.True(t, res.Enabled)
}

// TestVolumeHandlers 볼륨 조회/변경과 절삭 동작을 검증합니다.
func TestVolumeHandlers(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	t.Run("벨소리 볼륨 변경", func(t *testing.T) {
		rec := doJSON(t, h.SetRingerVolumeHandler, http.MethodPut, "/api/v1/settings/ringer-volume", `{"volume": 3}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.VolumeResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, 3, res.Volume)
	})

	t.Run("최대값 초과 요청은 절삭된 값이 반환된다", func(t *testing.T) {
		rec := doJSON(t, h.SetRingerVolumeHandler, http.MethodPut, "/api/v1/settings/ringer-volume", `{"volume": 100}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.VolumeResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, memdevice.MaxRingerVolume, res.Volume)
	})

	t.Run("벨소리 최대 볼륨 조회", func(t *testing.T) {
		rec := doJSON(t, h.GetMaxRingerVolumeHandler, http.MethodGet, "/api/v1/settings/ringer-volume/max", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.MaxVolumeResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, memdevice.MaxRingerVolume, res.MaxVolume)
	})

	t.Run("미디어 볼륨 변경과 조회", func(t *testing.T) {
		rec := doJSON(t, h.SetMediaVolumeHandler, http.MethodPut, "/api/v1/settings/media-volume", `{"volume": 11}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.VolumeResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, 11, res.Volume)

		rec = doJSON(t, h.GetMediaVolumeHandler, http.MethodGet, "/api/v1/settings/media-volume", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.Equal(t, 11, res.Volume)
	})

	t.Run("음수 볼륨은 400", func(t *testing.T) {
		err := callHandler(t, h.SetRingerVolumeHandler, http.MethodPut, "/api/v1/settings/ringer-volume", `{"volume": -1}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})
}

// TestScreenBrightnessHandlers 화면 밝기 조회/변경 엔드포인트를 검증합니다.
func TestScreenBrightnessHandlers(t *testing.T) {
	h, device := newTestHandler(t, memdevice.DefaultOptions())

	t.Run("밝기 변경이 브리지를 거쳐 반영된다", func(t *testing.T) {
		rec := doJSON(t, h.SetScreenBrightnessHandler, http.MethodPut, "/api/v1/settings/screen-brightness", `{"value": 128}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1response.ScreenBrightnessResponse
		decodeJSON(t, rec, &res)
		assert.Equal(t, 128, res.Value)

		rec = doJSON(t, h.GetScreenBrightnessHandler, http.MethodGet, "/api/v1/settings/screen-brightness", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeJSON(t, rec, &res)
		assert.Equal(t, 128, res.Value)

		assert.Eventually(t, func() bool {
			return device.LiveHostCount() == 0
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("범위를 벗어난 값은 400", func(t *testing.T) {
		err := callHandler(t, h.SetScreenBrightnessHandler, http.MethodPut, "/api/v1/settings/screen-brightness", `{"value": 300}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})
}

// TestScreenBrightnessHandlers_DeviceUnavailable 호스트 생성이 불가능한 디바이스에
// 대한 밝기 변경이 503으로 처리되는지 검증합니다.
func TestScreenBrightnessHandlers_DeviceUnavailable(t *testing.T) {
	opts := memdevice.DefaultOptions()
	opts.HostCreateErr = errors.New("host creation rejected")

	h, _ := newTestHandler(t, opts)

	err := callHandler(t, h.SetScreenBrightnessHandler, http.MethodPut, "/api/v1/settings/screen-brightness", `{"value": 100}`)
	assert.Equal(t, http.StatusServiceUnavailable, errorStatusOf(t, err))
}

// TestScreenStateHandlers 화면 상태 조회와 깨우기 엔드포인트를 검증합니다.
func TestScreenStateHandlers(t *testing.T) {
	opts := memdevice.DefaultOptions()
	opts.ScreenOn = false

	h, _ := newTestHandler(t, opts)

	rec := doJSON(t, h.GetScreenStateHandler, http.MethodGet, "/api/v1/settings/screen", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1response.ScreenStateResponse
	decodeJSON(t, rec, &res)
	assert.False(t, res.On)

	rec = doJSON(t, h.WakeupScreenHandler, http.MethodPost, "/api/v1/settings/screen/wakeup", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var success response.SuccessResponse
	decodeJSON(t, rec, &success)
	assert.Equal(t, 0, success.ResultCode)

	rec = doJSON(t, h.GetScreenStateHandler, http.MethodGet, "/api/v1/settings/screen", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeJSON(t, rec, &res)
	assert.True(t, res.On)
}

// TestUptimeHandler 가동 시간 조회 엔드포인트를 검증합니다.
func TestUptimeHandler(t *testing.T) {
	h, _ := newTestHandler(t, memdevice.DefaultOptions())

	rec := doJSON(t, h.GetUptimeHandler, http.MethodGet, "/api/v1/settings/uptime", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1response.UptimeResponse
	decodeJSON(t, rec, &res)
	assert.GreaterOrEqual(t, res.UptimeSeconds, int64(0))
	assert.Greater(t, res.ElapsedRealtimeNanos, int64(0))
}

// TestSetClockHandler 시스템 시각 변경 엔드포인트를 검증합니다.
func TestSetClockHandler(t *testing.T) {
	h, device := newTestHandler(t, memdevice.DefaultOptions())

	t.Run("RFC 3339 형식의 시각으로 변경된다", func(t *testing.T) {
		target := time.Now().Add(5 * time.Hour).Format(time.RFC3339)

		rec := doJSON(t, h.SetClockHandler, http.MethodPut, "/api/v1/settings/clock", `{"time": "`+target+`"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		parsed, err := time.Parse(time.RFC3339, target)
		require.NoError(t, err)

		diff := device.Now().Sub(parsed)
		assert.Less(t, diff.Abs(), time.Second)
	})

	t.Run("time 필드 누락 시 400", func(t *testing.T) {
		err := callHandler(t, h.SetClockHandler, http.MethodPut, "/api/v1/settings/clock", `{}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})

	t.Run("RFC 3339 형식이 아니면 400", func(t *testing.T) {
		err := callHandler(t, h.SetClockHandler, http.MethodPut, "/api/v1/settings/clock", `{"time": "2025-01-01 00:00:00"}`)
		assert.Equal(t, http.StatusBadRequest, errorStatusOf(t, err))
	})
}
