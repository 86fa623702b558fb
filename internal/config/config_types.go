package config

import (
	"fmt"
	"time"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Device     DeviceConfig     `json:"device"`
	Bridge     BridgeConfig     `json:"bridge"`
	Profiles   []ProfileConfig  `json:"profiles"`
	Notifier   NotifierConfig   `json:"notifier"`
	SettingAPI SettingAPIConfig `json:"setting_api"`
}

// DeviceConfig 서버 기동 시 디바이스에 적용할 초기 상태를 정의하는 설정 구조체
type DeviceConfig struct {
	ScreenBrightness int  `json:"screen_brightness" validate:"min=0,max=255"`
	ScreenOffTimeout int  `json:"screen_off_timeout" validate:"min=0"` // 단위: 초
	RingerMode       int  `json:"ringer_mode" validate:"min=0,max=2"`
	RingerVolume     int  `json:"ringer_volume" validate:"min=0,max=7"`
	MediaVolume      int  `json:"media_volume" validate:"min=0,max=15"`
	AirplaneMode     bool `json:"airplane_mode"`
	ScreenOn         bool `json:"screen_on"`
}

// BridgeConfig 작업 실행 브리지의 동작 특성을 정의하는 설정 구조체
type BridgeConfig struct {
	// SubmitTimeout 브리지 작업 제출의 최대 대기 시간 (예: 30s, 500ms)
	SubmitTimeout string `json:"submit_timeout"`

	// HostCreateDelay 디스플레이 호스트 생성 지연 시간 (시뮬레이션 용도, 예: 0s)
	HostCreateDelay string `json:"host_create_delay"`
}

// SubmitTimeoutDuration 파싱된 작업 제출 최대 대기 시간을 반환합니다.
// 유효성 검증을 통과한 설정에 대해서만 호출되어야 하며, 파싱에 실패하면 기본값을 반환합니다.
func (c *BridgeConfig) SubmitTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.SubmitTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultSubmitTimeout)
	}
	return d
}

// HostCreateDelayDuration 파싱된 디스플레이 호스트 생성 지연 시간을 반환합니다.
func (c *BridgeConfig) HostCreateDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.HostCreateDelay)
	if err != nil {
		return 0
	}
	return d
}

// ProfileConfig 스케줄에 따라 일괄 적용할 설정 프로필을 정의하는 구조체
type ProfileConfig struct {
	ID        string                `json:"id" validate:"required"`
	Title     string                `json:"title"`
	Scheduler ProfileScheduler      `json:"scheduler"`
	Settings  ProfileSettingsConfig `json:"settings"`
}

// ProfileScheduler 프로필 적용 스케줄을 정의하는 구조체
type ProfileScheduler struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec"`
}

// ProfileSettingsConfig 프로필이 적용할 설정값들입니다. nil인 항목은 변경하지 않습니다.
type ProfileSettingsConfig struct {
	ScreenBrightness *int  `json:"screen_brightness" validate:"omitempty,min=0,max=255"`
	ScreenOffTimeout *int  `json:"screen_off_timeout" validate:"omitempty,min=0"`
	RingerMode       *int  `json:"ringer_mode" validate:"omitempty,min=0,max=2"`
	RingerVolume     *int  `json:"ringer_volume" validate:"omitempty,min=0"`
	MediaVolume      *int  `json:"media_volume" validate:"omitempty,min=0"`
	AirplaneMode     *bool `json:"airplane_mode"`
}

// Empty 적용할 설정값이 하나도 없는지 여부를 반환합니다.
func (c *ProfileSettingsConfig) Empty() bool {
	return c.ScreenBrightness == nil &&
		c.ScreenOffTimeout == nil &&
		c.RingerMode == nil &&
		c.RingerVolume == nil &&
		c.MediaVolume == nil &&
		c.AirplaneMode == nil
}

// NotifierConfig 운영 알림 채널을 정의하는 설정 구조체
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 정보를 담는 설정 구조체
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

// SettingAPIConfig 설정 제어를 위한 REST API 서버의 설정 구조체
type SettingAPIConfig struct {
	WS           WSConfig            `json:"ws"`
	CORS         CORSConfig          `json:"cors"`
	Applications []ApplicationConfig `json:"applications"`
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

// VerifyRecommendations 운영 안정성을 위해 권장되는 설정 준수 여부를 진단합니다.
func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

// ApplicationConfig 설정 API를 사용할 수 있는 클라이언트 어플리케이션의 인증 정보를 정의하는 구조체
type ApplicationConfig struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AppKey      string `json:"app_key" validate:"required"`
}
