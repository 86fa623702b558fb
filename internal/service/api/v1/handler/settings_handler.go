package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/setting-server/internal/pkg/validator"
	"github.com/darkkaiser/setting-server/internal/platform"

	"github.com/darkkaiser/setting-server/internal/service/api/httputil"
	"github.com/darkkaiser/setting-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/setting-server/internal/service/api/v1/model/response"
)

// GetScreenTimeoutHandler godoc
// @Summary 화면 꺼짐 대기 시간 조회
// @Description 화면이 자동으로 꺼지기까지의 대기 시간을 초 단위로 반환합니다.
// @Description 설정된 값이 없으면 0을 반환합니다.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.ScreenTimeoutResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/screen-timeout [get]
func (h *Handler) GetScreenTimeoutHandler(c echo.Context) error {
	seconds, err := h.facade.GetScreenTimeout()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.ScreenTimeoutResponse{Seconds: seconds})
}

// SetScreenTimeoutHandler godoc
// @Summary 화면 꺼짐 대기 시간 변경
// @Description 화면이 자동으로 꺼지기까지의 대기 시간을 초 단위로 변경하고,
// @Description 변경 전 값을 함께 반환합니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param timeout body request.ScreenTimeoutRequest true "변경할 대기 시간"
// @Success 200 {object} response.ScreenTimeoutUpdatedResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/screen-timeout [put]
func (h *Handler) SetScreenTimeoutHandler(c echo.Context) error {
	req := new(request.ScreenTimeoutRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	previous, err := h.facade.SetScreenTimeout(*req.Seconds)
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("seconds", *req.Seconds).Info("화면 꺼짐 대기 시간 변경됨")

	return httputil.SuccessWith(c, response.ScreenTimeoutUpdatedResponse{
		Seconds:         *req.Seconds,
		PreviousSeconds: previous,
	})
}

// GetAirplaneModeHandler godoc
// @Summary 비행기 모드 상태 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.AirplaneModeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/airplane-mode [get]
func (h *Handler) GetAirplaneModeHandler(c echo.Context) error {
	return httputil.SuccessWith(c, response.AirplaneModeResponse{
		Enabled: h.facade.CheckAirplaneMode(),
	})
}

// SetAirplaneModeHandler godoc
// @Summary 비행기 모드 변경
// @Description 비행기 모드를 켜거나 끕니다. 요청 본문의 enabled 필드를 생략하면
// @Description 현재 상태를 반전시키며, 변경 후 상태를 반환합니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param toggle body request.ToggleRequest true "변경할 상태"
// @Success 200 {object} response.AirplaneModeResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/airplane-mode [put]
func (h *Handler) SetAirplaneModeHandler(c echo.Context) error {
	req := new(request.ToggleRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}

	enabled, err := h.facade.ToggleAirplaneMode(req.Enabled)
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("enabled", enabled).Info("비행기 모드 변경됨")

	return httputil.SuccessWith(c, response.AirplaneModeResponse{Enabled: enabled})
}

// GetRingerSilentModeHandler godoc
// @Summary 무음 모드 상태 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.RingerSilentModeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-silent-mode [get]
func (h *Handler) GetRingerSilentModeHandler(c echo.Context) error {
	return httputil.SuccessWith(c, response.RingerSilentModeResponse{
		Enabled: h.facade.CheckRingerSilentMode(),
	})
}

// SetRingerSilentModeHandler godoc
// @Summary 무음 모드 변경
// @Description 무음 모드를 켜거나 끕니다. 요청 본문의 enabled 필드를 생략하면
// @Description 현재 상태를 반전시키며, 변경 후 상태를 반환합니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param toggle body request.ToggleRequest true "변경할 상태"
// @Success 200 {object} response.RingerSilentModeResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-silent-mode [put]
func (h *Handler) SetRingerSilentModeHandler(c echo.Context) error {
	req := new(request.ToggleRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}

	enabled, err := h.facade.ToggleRingerSilentMode(req.Enabled)
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("enabled", enabled).Info("무음 모드 변경됨")

	return httputil.SuccessWith(c, response.RingerSilentModeResponse{Enabled: enabled})
}

// GetRingerModeHandler godoc
// @Summary 벨소리 모드 조회
// @Description 현재 벨소리 모드를 반환합니다. (0: 무음, 1: 진동, 2: 소리)
// @Tags Settings
// @Produce json
// @Success 200 {object} response.RingerModeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-mode [get]
func (h *Handler) GetRingerModeHandler(c echo.Context) error {
	return httputil.SuccessWith(c, response.RingerModeResponse{
		Mode: int(h.facade.GetRingerMode()),
	})
}

// SetRingerModeHandler godoc
// @Summary 벨소리 모드 변경
// @Description 벨소리 모드를 변경합니다. (0: 무음, 1: 진동, 2: 소리)
// @Tags Settings
// @Accept json
// @Produce json
// @Param mode body request.RingerModeRequest true "변경할 벨소리 모드"
// @Success 200 {object} response.RingerModeResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-mode [put]
func (h *Handler) SetRingerModeHandler(c echo.Context) error {
	req := new(request.RingerModeRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	if err := h.facade.SetRingerMode(platform.RingerMode(*req.Mode)); err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("mode", *req.Mode).Info("벨소리 모드 변경됨")

	return httputil.SuccessWith(c, response.RingerModeResponse{Mode: *req.Mode})
}

// GetRingerVolumeHandler godoc
// @Summary 벨소리 볼륨 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.VolumeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-volume [get]
func (h *Handler) GetRingerVolumeHandler(c echo.Context) error {
	volume, err := h.facade.GetRingerVolume()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.VolumeResponse{Volume: volume})
}

// SetRingerVolumeHandler godoc
// @Summary 벨소리 볼륨 변경
// @Description 벨소리 볼륨을 변경합니다. 최대값을 초과하는 요청은 최대값으로 보정됩니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param volume body request.VolumeRequest true "변경할 볼륨"
// @Success 200 {object} response.VolumeResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-volume [put]
func (h *Handler) SetRingerVolumeHandler(c echo.Context) error {
	req := new(request.VolumeRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	if err := h.facade.SetRingerVolume(*req.Volume); err != nil {
		return toHTTPError(err)
	}

	volume, err := h.facade.GetRingerVolume()
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("volume", volume).Info("벨소리 볼륨 변경됨")

	return httputil.SuccessWith(c, response.VolumeResponse{Volume: volume})
}

// GetMaxRingerVolumeHandler godoc
// @Summary 벨소리 최대 볼륨 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.MaxVolumeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/ringer-volume/max [get]
func (h *Handler) GetMaxRingerVolumeHandler(c echo.Context) error {
	maxVolume, err := h.facade.GetMaxRingerVolume()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.MaxVolumeResponse{MaxVolume: maxVolume})
}

// GetMediaVolumeHandler godoc
// @Summary 미디어 볼륨 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.VolumeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/media-volume [get]
func (h *Handler) GetMediaVolumeHandler(c echo.Context) error {
	volume, err := h.facade.GetMediaVolume()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.VolumeResponse{Volume: volume})
}

// SetMediaVolumeHandler godoc
// @Summary 미디어 볼륨 변경
// @Description 미디어 볼륨을 변경합니다. 최대값을 초과하는 요청은 최대값으로 보정됩니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param volume body request.VolumeRequest true "변경할 볼륨"
// @Success 200 {object} response.VolumeResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/media-volume [put]
func (h *Handler) SetMediaVolumeHandler(c echo.Context) error {
	req := new(request.VolumeRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	if err := h.facade.SetMediaVolume(*req.Volume); err != nil {
		return toHTTPError(err)
	}

	volume, err := h.facade.GetMediaVolume()
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("volume", volume).Info("미디어 볼륨 변경됨")

	return httputil.SuccessWith(c, response.VolumeResponse{Volume: volume})
}

// GetMaxMediaVolumeHandler godoc
// @Summary 미디어 최대 볼륨 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.MaxVolumeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/media-volume/max [get]
func (h *Handler) GetMaxMediaVolumeHandler(c echo.Context) error {
	maxVolume, err := h.facade.GetMaxMediaVolume()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.MaxVolumeResponse{MaxVolume: maxVolume})
}

// GetScreenBrightnessHandler godoc
// @Summary 화면 밝기 조회
// @Description 마지막으로 설정된 화면 밝기 값을 반환합니다. (0 ~ 255)
// @Tags Settings
// @Produce json
// @Success 200 {object} response.ScreenBrightnessResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/screen-brightness [get]
func (h *Handler) GetScreenBrightnessHandler(c echo.Context) error {
	value, err := h.facade.GetScreenBrightness()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.ScreenBrightnessResponse{Value: value})
}

// SetScreenBrightnessHandler godoc
// @Summary 화면 밝기 변경
// @Description 화면 밝기를 변경합니다. (0 ~ 255)
// @Description
// @Description 밝기 적용은 디스플레이 호스트를 통해 수행되므로 다른 설정 변경보다
// @Description 오래 걸릴 수 있으며, 디바이스가 혼잡한 경우 제한 시간 초과로 실패할 수 있습니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param brightness body request.ScreenBrightnessRequest true "변경할 화면 밝기"
// @Success 200 {object} response.ScreenBrightnessResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 503 {object} response.ErrorResponse "디바이스가 요청을 처리할 수 없음"
// @Failure 504 {object} response.ErrorResponse "밝기 적용 제한 시간 초과"
// @Security ApiKeyAuth
// @Router /api/v1/settings/screen-brightness [put]
func (h *Handler) SetScreenBrightnessHandler(c echo.Context) error {
	req := new(request.ScreenBrightnessRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	if _, err := h.facade.SetScreenBrightness(c.Request().Context(), *req.Value); err != nil {
		return toHTTPError(err)
	}

	// 범위를 벗어난 요청값은 절삭되어 저장되므로, 실제 반영된 값을 다시 조회하여 반환한다.
	value, err := h.facade.GetScreenBrightness()
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("value", value).Info("화면 밝기 변경됨")

	return httputil.SuccessWith(c, response.ScreenBrightnessResponse{Value: value})
}

// GetScreenStateHandler godoc
// @Summary 화면 켜짐 상태 조회
// @Tags Settings
// @Produce json
// @Success 200 {object} response.ScreenStateResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/screen [get]
func (h *Handler) GetScreenStateHandler(c echo.Context) error {
	on, err := h.facade.CheckScreenOn()
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.ScreenStateResponse{On: on})
}

// WakeupScreenHandler godoc
// @Summary 화면 깨우기
// @Description 꺼져 있는 화면을 켭니다. 이미 켜져 있는 경우에도 성공으로 처리됩니다.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/screen/wakeup [post]
func (h *Handler) WakeupScreenHandler(c echo.Context) error {
	if err := h.facade.WakeupScreen(); err != nil {
		return toHTTPError(err)
	}

	h.log(c).Info("화면 깨우기 요청 처리됨")

	return httputil.Success(c)
}

// GetUptimeHandler godoc
// @Summary 디바이스 가동 시간 조회
// @Description 디바이스 부팅 후 경과 시간을 초/나노초 단위로 반환합니다.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.UptimeResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/uptime [get]
func (h *Handler) GetUptimeHandler(c echo.Context) error {
	return httputil.SuccessWith(c, response.UptimeResponse{
		UptimeSeconds:        int64(h.facade.GetDeviceUptime().Seconds()),
		ElapsedRealtimeNanos: h.facade.GetSystemElapsedRealtimeNanos(),
	})
}

// SetClockHandler godoc
// @Summary 시스템 시각 변경
// @Description 디바이스의 시스템 시각을 RFC 3339 형식의 시각으로 변경합니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param clock body request.ClockRequest true "변경할 시각"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/clock [put]
func (h *Handler) SetClockHandler(c echo.Context) error {
	req := new(request.ClockRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("잘못된 요청 형식입니다")
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	t, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		return httputil.NewBadRequestError("time은 RFC 3339 형식이어야 합니다 (예: 2025-01-01T00:00:00+09:00)")
	}

	if err := h.facade.SetTime(t); err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("time", t.Format(time.RFC3339)).Info("시스템 시각 변경됨")

	return httputil.Success(c)
}
