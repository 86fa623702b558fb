// Package response v1 API의 응답 모델을 정의합니다.
package response

// ScreenTimeoutResponse 화면 꺼짐 대기 시간 조회 응답입니다.
type ScreenTimeoutResponse struct {
	// Seconds 화면 꺼짐 대기 시간(초)
	Seconds int `json:"seconds" example:"60"`
}

// ScreenTimeoutUpdatedResponse 화면 꺼짐 대기 시간 변경 응답입니다.
type ScreenTimeoutUpdatedResponse struct {
	// Seconds 변경된 화면 꺼짐 대기 시간(초)
	Seconds int `json:"seconds" example:"120"`

	// PreviousSeconds 변경 전 화면 꺼짐 대기 시간(초)
	PreviousSeconds int `json:"previous_seconds" example:"60"`
}

// AirplaneModeResponse 비행기 모드 상태 응답입니다.
type AirplaneModeResponse struct {
	// Enabled 비행기 모드 활성화 여부
	Enabled bool `json:"enabled" example:"false"`
}

// RingerSilentModeResponse 무음 모드 상태 응답입니다.
type RingerSilentModeResponse struct {
	// Enabled 무음 모드 활성화 여부
	Enabled bool `json:"enabled" example:"false"`
}

// RingerModeResponse 벨소리 모드 응답입니다.
type RingerModeResponse struct {
	// Mode 벨소리 모드 (0: 무음, 1: 진동, 2: 소리)
	Mode int `json:"mode" example:"2"`
}

// VolumeResponse 볼륨 조회 응답입니다.
type VolumeResponse struct {
	// Volume 현재 볼륨 값
	Volume int `json:"volume" example:"5"`
}

// MaxVolumeResponse 최대 볼륨 조회 응답입니다.
type MaxVolumeResponse struct {
	// MaxVolume 설정 가능한 최대 볼륨 값
	MaxVolume int `json:"max_volume" example:"7"`
}

// ScreenBrightnessResponse 화면 밝기 응답입니다.
type ScreenBrightnessResponse struct {
	// Value 화면 밝기 값 (0 ~ 255)
	Value int `json:"value" example:"102"`
}

// ScreenStateResponse 화면 켜짐 상태 응답입니다.
type ScreenStateResponse struct {
	// On 화면 켜짐 여부
	On bool `json:"on" example:"true"`
}

// UptimeResponse 디바이스 가동 시간 응답입니다.
type UptimeResponse struct {
	// UptimeSeconds 디바이스 부팅 후 경과 시간(초)
	UptimeSeconds int64 `json:"uptime_seconds" example:"86400"`

	// ElapsedRealtimeNanos 디바이스 부팅 후 경과 시간(나노초)
	ElapsedRealtimeNanos int64 `json:"elapsed_realtime_nanos" example:"86400000000000"`
}

// RawValueResponse 설정 저장소 직접 조회/변경 응답입니다.
type RawValueResponse struct {
	// Key 정규화된 설정 키
	Key string `json:"key" example:"screen_brightness"`

	// Value 설정 값
	Value int `json:"value" example:"102"`
}
