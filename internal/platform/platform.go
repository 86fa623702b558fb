// Package platform 디바이스 플랫폼과의 경계를 정의합니다.
//
// 설정 저장소, 오디오/연결/전원 제어, 디스플레이 호스트 생성 등
// 디바이스가 제공해야 하는 기능을 인터페이스로 추상화하며,
// 실제 구현(실장비 연동 또는 인메모리 시뮬레이터)은 하위 패키지에서 제공합니다.
package platform

import (
	"time"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	"github.com/darkkaiser/setting-server/internal/service/contract"
)

var (
	// ErrSettingNotFound 요청한 설정 키가 저장소에 존재하지 않을 때 반환됩니다.
	ErrSettingNotFound = apperrors.New(apperrors.NotFound, "설정값을 찾을 수 없습니다")

	// ErrInvalidRingerMode 정의되지 않은 벨소리 모드가 지정되었을 때 반환됩니다.
	ErrInvalidRingerMode = apperrors.New(apperrors.InvalidInput, "유효하지 않은 벨소리 모드입니다")

	// ErrUnknownStream 정의되지 않은 오디오 스트림이 지정되었을 때 반환됩니다.
	ErrUnknownStream = apperrors.New(apperrors.InvalidInput, "알 수 없는 오디오 스트림입니다")
)

// SettingsStore 키 기반의 정수형 설정값 저장소입니다.
type SettingsStore interface {
	// GetInt 지정된 키의 설정값을 조회합니다. 키가 없으면 ErrSettingNotFound를 반환합니다.
	GetInt(key string) (int, error)

	// PutInt 지정된 키에 설정값을 저장합니다.
	PutInt(key string, value int) error
}

// RingerMode 벨소리 동작 모드입니다.
type RingerMode int

const (
	// RingerModeSilent 무음 모드
	RingerModeSilent RingerMode = 0

	// RingerModeVibrate 진동 모드
	RingerModeVibrate RingerMode = 1

	// RingerModeNormal 일반(소리) 모드
	RingerModeNormal RingerMode = 2
)

// Valid 정의된 벨소리 모드인지 확인합니다.
func (m RingerMode) Valid() bool {
	switch m {
	case RingerModeSilent, RingerModeVibrate, RingerModeNormal:
		return true
	}
	return false
}

// Stream 볼륨 제어 대상이 되는 오디오 스트림입니다.
type Stream string

const (
	// StreamRing 벨소리 스트림
	StreamRing Stream = "ring"

	// StreamMedia 미디어(음악/동영상) 스트림
	StreamMedia Stream = "media"
)

// AudioController 벨소리 모드와 스트림 볼륨을 제어합니다.
type AudioController interface {
	// RingerMode 현재 벨소리 모드를 반환합니다.
	RingerMode() RingerMode

	// SetRingerMode 벨소리 모드를 변경합니다. 정의되지 않은 모드는 ErrInvalidRingerMode를 반환합니다.
	SetRingerMode(mode RingerMode) error

	// StreamVolume 지정된 스트림의 현재 볼륨을 반환합니다.
	StreamVolume(stream Stream) (int, error)

	// SetStreamVolume 지정된 스트림의 볼륨을 변경합니다.
	// 범위를 벗어난 값은 [0, 최대 볼륨] 구간으로 절삭됩니다.
	SetStreamVolume(stream Stream, volume int) error

	// StreamMaxVolume 지정된 스트림의 최대 볼륨을 반환합니다.
	StreamMaxVolume(stream Stream) (int, error)
}

// ConnectivityController 네트워크 연결 모드를 제어합니다.
type ConnectivityController interface {
	// AirplaneModeEnabled 비행기 모드 활성화 여부를 반환합니다.
	AirplaneModeEnabled() bool

	// SetAirplaneMode 비행기 모드를 설정합니다.
	SetAirplaneMode(enabled bool) error
}

// PowerController 전원 및 화면 상태를 제어합니다.
type PowerController interface {
	// ScreenOn 화면이 켜져 있는지 여부를 반환합니다.
	ScreenOn() (bool, error)

	// WakeUp 꺼져 있는 화면을 켭니다.
	WakeUp() error

	// Uptime 디바이스 부팅 후 경과 시간을 반환합니다.
	Uptime() time.Duration

	// ElapsedRealtimeNanos 디바이스 부팅 후 경과 시간을 나노초 단위로 반환합니다.
	ElapsedRealtimeNanos() int64
}

// Clock 디바이스 시스템 시각을 제어합니다.
type Clock interface {
	// SetTime 시스템 시각을 지정된 값으로 변경합니다.
	SetTime(t time.Time) error
}

// DisplayAttributes 디스플레이 호스트 윈도우의 속성입니다.
type DisplayAttributes struct {
	// Brightness 화면 밝기 (0.0 ~ 1.0)
	Brightness float64
}

// DisplayHost 일시적으로 생성되는 디스플레이 실행 컨텍스트입니다.
//
// 플랫폼의 윈도우 스택이 소유하며, 생성을 요청한 측은 런치 ID를 통한
// 약한 상관관계만을 유지합니다. 호스트가 파기된 이후의 사용은 허용되지 않습니다.
type DisplayHost interface {
	// LaunchID 호스트 생성 요청에 함께 전달된 작업 인스턴스 ID를 반환합니다.
	LaunchID() contract.TaskInstanceID

	// Attributes 현재 윈도우 속성을 반환합니다.
	Attributes() DisplayAttributes

	// SetAttributes 윈도우 속성을 변경합니다.
	SetAttributes(attrs DisplayAttributes) error
}

// HostLauncher 디스플레이 호스트의 생성과 파기를 담당하는 플랫폼 진입점입니다.
type HostLauncher interface {
	// RequestCreate 지정된 작업 인스턴스 ID를 런치 파라미터로 하는
	// 디스플레이 호스트의 생성을 비동기로 요청합니다.
	//
	// 생성은 플랫폼의 직렬화된 메인 루프에서 이루어지며, 호스트가 기동되면
	// 등록된 HostStartHandler의 OnHostStart()가 해당 루프 위에서 호출됩니다.
	RequestCreate(id contract.TaskInstanceID) error

	// RequestDestroy 지정된 호스트의 파기를 요청합니다. 중복 호출은 무시됩니다.
	RequestDestroy(host DisplayHost)
}

// HostStartHandler 디스플레이 호스트 기동 콜백을 수신하는 인터페이스입니다.
//
// 플랫폼은 호스트 생성을 마친 직후, 호스트의 실행 루프 위에서 OnHostStart()를 호출합니다.
type HostStartHandler interface {
	OnHostStart(host DisplayHost)
}
