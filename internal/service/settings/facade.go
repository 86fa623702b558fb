// Package settings 디바이스 설정 조회와 변경을 담당하는 파사드를 제공합니다.
//
// 대부분의 연산은 플랫폼 협력자에게 그대로 위임하는 얇은 래퍼이며,
// 화면 밝기 변경만이 유일하게 작업 실행 브리지를 거칩니다. 밝기는 살아있는
// 디스플레이 호스트의 윈도우 속성에 적용되어야 하기 때문입니다.
package settings

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/bridge"
	"github.com/darkkaiser/setting-server/internal/service/contract"
	applog "github.com/darkkaiser/setting-server/pkg/log"
	"github.com/sirupsen/logrus"
)

const (
	// KeyScreenOffTimeout 화면 꺼짐 대기 시간의 설정 저장소 키입니다. 단위: 밀리초
	KeyScreenOffTimeout = "screen_off_timeout"

	// KeyScreenBrightness 화면 밝기의 설정 저장소 키입니다. 범위: 0 ~ 255
	KeyScreenBrightness = "screen_brightness"

	// BrightnessMax 화면 밝기의 최댓값입니다.
	BrightnessMax = 255
)

// Deps 파사드가 의존하는 플랫폼 협력자들입니다.
type Deps struct {
	Store        platform.SettingsStore
	Audio        platform.AudioController
	Connectivity platform.ConnectivityController
	Power        platform.PowerController
	Clock        platform.Clock
}

// Facade 디바이스 설정 조회/변경 연산의 단일 진입점입니다.
type Facade struct {
	deps Deps

	executor      *bridge.Executor
	submitTimeout time.Duration

	alerter contract.AlertSender

	logger *logrus.Entry
}

// NewFacade 새로운 Facade 객체를 생성하여 반환합니다.
func NewFacade(deps Deps, executor *bridge.Executor, submitTimeout time.Duration, alerter contract.AlertSender) *Facade {
	if alerter == nil {
		panic("AlertSender 객체가 초기화되지 않았습니다")
	}

	return &Facade{
		deps: deps,

		executor:      executor,
		submitTimeout: submitTimeout,

		alerter: alerter,

		logger: applog.WithComponent("settings.facade"),
	}
}

// GetScreenTimeout 화면 꺼짐 대기 시간을 초 단위로 반환합니다.
// 설정값이 없으면 0을 반환합니다.
func (f *Facade) GetScreenTimeout() (int, error) {
	ms, err := f.deps.Store.GetInt(KeyScreenOffTimeout)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return 0, nil
		}
		return 0, err
	}
	return ms / 1000, nil
}

// SetScreenTimeout 화면 꺼짐 대기 시간을 초 단위로 변경하고, 변경 전 값을 반환합니다.
func (f *Facade) SetScreenTimeout(seconds int) (int, error) {
	if seconds < 0 {
		return 0, apperrors.New(apperrors.InvalidInput, "화면 꺼짐 대기 시간은 0 이상이어야 합니다")
	}

	old, err := f.GetScreenTimeout()
	if err != nil {
		return 0, err
	}

	if err := f.deps.Store.PutInt(KeyScreenOffTimeout, seconds*1000); err != nil {
		return 0, err
	}

	return old, nil
}

// CheckAirplaneMode 비행기 모드 활성화 여부를 반환합니다.
func (f *Facade) CheckAirplaneMode() bool {
	return f.deps.Connectivity.AirplaneModeEnabled()
}

// ToggleAirplaneMode 비행기 모드를 설정하고 변경 후 상태를 반환합니다.
// enabled가 nil이면 현재 상태를 반전시킵니다.
func (f *Facade) ToggleAirplaneMode(enabled *bool) (bool, error) {
	next := !f.deps.Connectivity.AirplaneModeEnabled()
	if enabled != nil {
		next = *enabled
	}

	if err := f.deps.Connectivity.SetAirplaneMode(next); err != nil {
		return false, err
	}

	return next, nil
}

// CheckRingerSilentMode 무음 모드 활성화 여부를 반환합니다.
func (f *Facade) CheckRingerSilentMode() bool {
	return f.deps.Audio.RingerMode() == platform.RingerModeSilent
}

// ToggleRingerSilentMode 무음 모드를 설정하고 변경 후 상태를 반환합니다.
// enabled가 nil이면 현재 상태를 반전시킵니다.
func (f *Facade) ToggleRingerSilentMode(enabled *bool) (bool, error) {
	next := !f.CheckRingerSilentMode()
	if enabled != nil {
		next = *enabled
	}

	mode := platform.RingerModeNormal
	if next {
		mode = platform.RingerModeSilent
	}

	if err := f.deps.Audio.SetRingerMode(mode); err != nil {
		return false, err
	}

	return next, nil
}

// GetRingerMode 현재 벨소리 모드를 반환합니다.
func (f *Facade) GetRingerMode() platform.RingerMode {
	return f.deps.Audio.RingerMode()
}

// SetRingerMode 벨소리 모드를 변경합니다.
func (f *Facade) SetRingerMode(mode platform.RingerMode) error {
	return f.deps.Audio.SetRingerMode(mode)
}

// GetRingerVolume 벨소리 볼륨을 반환합니다.
func (f *Facade) GetRingerVolume() (int, error) {
	return f.deps.Audio.StreamVolume(platform.StreamRing)
}

// SetRingerVolume 벨소리 볼륨을 변경합니다.
func (f *Facade) SetRingerVolume(volume int) error {
	return f.deps.Audio.SetStreamVolume(platform.StreamRing, volume)
}

// GetMaxRingerVolume 벨소리 스트림의 최대 볼륨을 반환합니다.
func (f *Facade) GetMaxRingerVolume() (int, error) {
	return f.deps.Audio.StreamMaxVolume(platform.StreamRing)
}

// GetMediaVolume 미디어 볼륨을 반환합니다.
func (f *Facade) GetMediaVolume() (int, error) {
	return f.deps.Audio.StreamVolume(platform.StreamMedia)
}

// SetMediaVolume 미디어 볼륨을 변경합니다.
func (f *Facade) SetMediaVolume(volume int) error {
	return f.deps.Audio.SetStreamVolume(platform.StreamMedia, volume)
}

// GetMaxMediaVolume 미디어 스트림의 최대 볼륨을 반환합니다.
func (f *Facade) GetMaxMediaVolume() (int, error) {
	return f.deps.Audio.StreamMaxVolume(platform.StreamMedia)
}

// GetScreenBrightness 화면 밝기를 반환합니다. 설정값이 없으면 0을 반환합니다.
func (f *Facade) GetScreenBrightness() (int, error) {
	value, err := f.deps.Store.GetInt(KeyScreenBrightness)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}

// SetScreenBrightness 화면 밝기를 변경하고 변경 전 값을 반환합니다.
//
// 범위를 벗어난 값은 [0, 255] 구간으로 절삭됩니다. 값은 설정 저장소에
// 저장된 뒤, 작업 실행 브리지를 통해 일시적으로 생성되는 디스플레이 호스트의
// 윈도우 속성에도 적용됩니다. 브리지 제출이 실패하면 저장된 설정값은
// 유지된 채 에러가 반환되고 운영 알림이 발송됩니다.
func (f *Facade) SetScreenBrightness(ctx context.Context, value int) (int, error) {
	value = clampBrightness(value)

	old, err := f.GetScreenBrightness()
	if err != nil {
		return 0, err
	}

	if err := f.deps.Store.PutInt(KeyScreenBrightness, value); err != nil {
		return 0, err
	}

	if _, err := f.executor.SubmitWithTimeout(ctx, newBrightnessWork(value), f.submitTimeout); err != nil {
		f.logger.WithError(err).WithField("brightness", value).Error("화면 밝기 적용 작업이 실패하였습니다.")

		if alertErr := f.alerter.NotifyWithError(fmt.Sprintf("화면 밝기(%d) 적용 작업이 실패하였습니다. (사유: %v)", value, err)); alertErr != nil {
			f.logger.WithError(alertErr).Warn("운영 알림 발송이 실패하였습니다.")
		}

		return 0, err
	}

	return old, nil
}

// CheckScreenOn 화면이 켜져 있는지 여부를 반환합니다.
func (f *Facade) CheckScreenOn() (bool, error) {
	return f.deps.Power.ScreenOn()
}

// WakeupScreen 꺼져 있는 화면을 켭니다.
func (f *Facade) WakeupScreen() error {
	return f.deps.Power.WakeUp()
}

// GetDeviceUptime 디바이스 부팅 후 경과 시간을 반환합니다.
func (f *Facade) GetDeviceUptime() time.Duration {
	return f.deps.Power.Uptime()
}

// GetSystemElapsedRealtimeNanos 디바이스 부팅 후 경과 시간을 나노초 단위로 반환합니다.
func (f *Facade) GetSystemElapsedRealtimeNanos() int64 {
	return f.deps.Power.ElapsedRealtimeNanos()
}

// SetTime 디바이스 시스템 시각을 변경합니다.
func (f *Facade) SetTime(t time.Time) error {
	return f.deps.Clock.SetTime(t)
}

// GetRawValue 설정 저장소에서 지정된 키의 정수 값을 직접 조회합니다.
func (f *Facade) GetRawValue(key string) (int, error) {
	return f.deps.Store.GetInt(key)
}

// SetRawValue 설정 저장소에 지정된 키의 정수 값을 직접 기록합니다.
func (f *Facade) SetRawValue(key string, value int) error {
	return f.deps.Store.PutInt(key, value)
}

func clampBrightness(value int) int {
	if value < 0 {
		return 0
	}
	if value > BrightnessMax {
		return BrightnessMax
	}
	return value
}
