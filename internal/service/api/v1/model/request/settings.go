// Package request v1 API의 요청 모델을 정의합니다.
package request

// ScreenTimeoutRequest 화면 꺼짐 대기 시간 변경 요청입니다.
type ScreenTimeoutRequest struct {
	// Seconds 화면 꺼짐 대기 시간(초)
	Seconds *int `json:"seconds" validate:"required,min=0" example:"60"`
}

// ToggleRequest 켜기/끄기 상태 변경 요청입니다.
//
// enabled 필드를 생략하면 현재 상태를 반전시킵니다.
type ToggleRequest struct {
	// Enabled 변경할 상태 (생략 시 현재 상태 반전)
	Enabled *bool `json:"enabled" example:"true"`
}

// RingerModeRequest 벨소리 모드 변경 요청입니다.
type RingerModeRequest struct {
	// Mode 벨소리 모드 (0: 무음, 1: 진동, 2: 소리)
	Mode *int `json:"mode" validate:"required,min=0,max=2" example:"2"`
}

// VolumeRequest 볼륨 변경 요청입니다.
type VolumeRequest struct {
	// Volume 변경할 볼륨 값
	Volume *int `json:"volume" validate:"required,min=0" example:"5"`
}

// ScreenBrightnessRequest 화면 밝기 변경 요청입니다.
type ScreenBrightnessRequest struct {
	// Value 변경할 화면 밝기 값 (0 ~ 255)
	Value *int `json:"value" validate:"required,min=0,max=255" example:"102"`
}

// ClockRequest 시스템 시각 변경 요청입니다.
type ClockRequest struct {
	// Time 변경할 시각 (RFC 3339 형식)
	Time string `json:"time" validate:"required" example:"2025-01-01T00:00:00+09:00"`
}
