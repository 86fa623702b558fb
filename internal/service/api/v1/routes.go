// Package v1 Setting API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// 디바이스 설정의 조회/변경을 위한 RESTful API를 제공합니다.
//
// 모든 엔드포인트는 애플리케이션 인증(app_key)을 요구하며,
// 인증 미들웨어를 통해 요청을 검증합니다.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/setting-server/internal/service/api/auth"
	"github.com/darkkaiser/setting-server/internal/service/api/middleware"
	"github.com/darkkaiser/setting-server/internal/service/api/v1/handler"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// /api/v1/settings 그룹을 생성하고, 인증 미들웨어를 적용한 후
// 설정 조회/변경 엔드포인트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	settingsGroup := e.Group("/api/v1/settings", middleware.RequireAuthentication(authenticator))

	// 화면 꺼짐 대기 시간
	settingsGroup.GET("/screen-timeout", h.GetScreenTimeoutHandler)
	settingsGroup.PUT("/screen-timeout", h.SetScreenTimeoutHandler)

	// 비행기 모드
	settingsGroup.GET("/airplane-mode", h.GetAirplaneModeHandler)
	settingsGroup.PUT("/airplane-mode", h.SetAirplaneModeHandler)

	// 무음 모드 / 벨소리 모드
	settingsGroup.GET("/ringer-silent-mode", h.GetRingerSilentModeHandler)
	settingsGroup.PUT("/ringer-silent-mode", h.SetRingerSilentModeHandler)
	settingsGroup.GET("/ringer-mode", h.GetRingerModeHandler)
	settingsGroup.PUT("/ringer-mode", h.SetRingerModeHandler)

	// 볼륨
	settingsGroup.GET("/ringer-volume", h.GetRingerVolumeHandler)
	settingsGroup.PUT("/ringer-volume", h.SetRingerVolumeHandler)
	settingsGroup.GET("/ringer-volume/max", h.GetMaxRingerVolumeHandler)
	settingsGroup.GET("/media-volume", h.GetMediaVolumeHandler)
	settingsGroup.PUT("/media-volume", h.SetMediaVolumeHandler)
	settingsGroup.GET("/media-volume/max", h.GetMaxMediaVolumeHandler)

	// 화면 밝기 및 화면 상태
	settingsGroup.GET("/screen-brightness", h.GetScreenBrightnessHandler)
	settingsGroup.PUT("/screen-brightness", h.SetScreenBrightnessHandler)
	settingsGroup.GET("/screen", h.GetScreenStateHandler)
	settingsGroup.POST("/screen/wakeup", h.WakeupScreenHandler)

	// 시스템 정보 및 시각
	settingsGroup.GET("/uptime", h.GetUptimeHandler)
	settingsGroup.PUT("/clock", h.SetClockHandler)

	// 설정 저장소 직접 접근
	settingsGroup.GET("/values/:key", h.GetRawValueHandler)
	settingsGroup.PUT("/values/:key", h.SetRawValueHandler)
}
