// Package memdevice 인메모리 시뮬레이션 디바이스를 제공합니다.
//
// platform 패키지의 모든 협력자 인터페이스를 구현하며, 실장비 없이도
// 서버를 구동하고 테스트할 수 있는 기본 구현체입니다. 디스플레이 호스트의
// 생성과 파기는 UI 스레드를 본뜬 단일 메인 루프 고루틴에서 직렬화됩니다.
package memdevice

import (
	"sync"
	"time"

	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
)

const (
	// MaxRingerVolume 벨소리 스트림의 최대 볼륨입니다.
	MaxRingerVolume = 7

	// MaxMediaVolume 미디어 스트림의 최대 볼륨입니다.
	MaxMediaVolume = 15
)

// Options 디바이스의 초기 상태와 동작 특성입니다.
type Options struct {
	// InitialSettings 설정 저장소의 초기 키/값입니다.
	InitialSettings map[string]int

	// RingerMode 초기 벨소리 모드입니다.
	RingerMode platform.RingerMode

	// RingerVolume 초기 벨소리 볼륨입니다.
	RingerVolume int

	// MediaVolume 초기 미디어 볼륨입니다.
	MediaVolume int

	// AirplaneMode 초기 비행기 모드 상태입니다.
	AirplaneMode bool

	// ScreenOn 초기 화면 상태입니다.
	ScreenOn bool

	// HostCreateDelay 호스트 생성 요청이 메인 루프에서 처리되기까지의 지연 시간입니다.
	// 메인 루프의 점유 상황을 시뮬레이션하는 테스트 용도로 사용됩니다.
	HostCreateDelay time.Duration

	// HostCreateErr 설정된 경우 모든 호스트 생성 요청이 이 에러로 즉시 거부됩니다.
	HostCreateErr error
}

// DefaultOptions 일반적인 초기 상태의 Options를 반환합니다.
func DefaultOptions() Options {
	return Options{
		InitialSettings: map[string]int{},
		RingerMode:      platform.RingerModeNormal,
		RingerVolume:    5,
		MediaVolume:     8,
		AirplaneMode:    false,
		ScreenOn:        true,
	}
}

// Device 인메모리 시뮬레이션 디바이스입니다.
//
// platform.SettingsStore, AudioController, ConnectivityController,
// PowerController, Clock, HostLauncher를 모두 구현합니다.
type Device struct {
	mu sync.Mutex

	settings map[string]int

	ringerMode platform.RingerMode
	volumes    map[platform.Stream]int
	maxVolumes map[platform.Stream]int

	airplaneMode bool
	screenOn     bool

	bootTime    time.Time
	clockOffset time.Duration

	handler platform.HostStartHandler

	hostCreateDelay time.Duration
	hostCreateErr   error

	createC  chan contract.TaskInstanceID
	destroyC chan *displayHost
	stopC    chan struct{}

	liveHosts int

	running   bool
	runningMu sync.Mutex
}

// New 새로운 Device 객체를 생성하여 반환합니다.
func New(opts Options) *Device {
	settings := make(map[string]int, len(opts.InitialSettings))
	for k, v := range opts.InitialSettings {
		settings[k] = v
	}

	return &Device{
		settings: settings,

		ringerMode: opts.RingerMode,
		volumes: map[platform.Stream]int{
			platform.StreamRing:  clampVolume(opts.RingerVolume, MaxRingerVolume),
			platform.StreamMedia: clampVolume(opts.MediaVolume, MaxMediaVolume),
		},
		maxVolumes: map[platform.Stream]int{
			platform.StreamRing:  MaxRingerVolume,
			platform.StreamMedia: MaxMediaVolume,
		},

		airplaneMode: opts.AirplaneMode,
		screenOn:     opts.ScreenOn,

		bootTime: time.Now(),

		hostCreateDelay: opts.HostCreateDelay,
		hostCreateErr:   opts.HostCreateErr,

		createC:  make(chan contract.TaskInstanceID, 16),
		destroyC: make(chan *displayHost, 16),
		stopC:    make(chan struct{}),
	}
}

// SetHostStartHandler 디스플레이 호스트 기동 콜백 수신자를 등록합니다.
// Start() 호출 전에 등록되어야 합니다.
func (d *Device) SetHostStartHandler(handler platform.HostStartHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = handler
}

//
// platform.SettingsStore
//

// GetInt 지정된 키의 설정값을 조회합니다.
func (d *Device) GetInt(key string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	value, ok := d.settings[key]
	if !ok {
		return 0, platform.ErrSettingNotFound
	}
	return value, nil
}

// PutInt 지정된 키에 설정값을 저장합니다.
func (d *Device) PutInt(key string, value int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.settings[key] = value
	return nil
}

//
// platform.AudioController
//

// RingerMode 현재 벨소리 모드를 반환합니다.
func (d *Device) RingerMode() platform.RingerMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ringerMode
}

// SetRingerMode 벨소리 모드를 변경합니다.
func (d *Device) SetRingerMode(mode platform.RingerMode) error {
	if !mode.Valid() {
		return platform.ErrInvalidRingerMode
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.ringerMode = mode

	return nil
}

// StreamVolume 지정된 스트림의 현재 볼륨을 반환합니다.
func (d *Device) StreamVolume(stream platform.Stream) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	volume, ok := d.volumes[stream]
	if !ok {
		return 0, platform.ErrUnknownStream
	}
	return volume, nil
}

// SetStreamVolume 지정된 스트림의 볼륨을 변경합니다.
// 범위를 벗어난 값은 [0, 최대 볼륨] 구간으로 절삭됩니다.
func (d *Device) SetStreamVolume(stream platform.Stream, volume int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	maxVolume, ok := d.maxVolumes[stream]
	if !ok {
		return platform.ErrUnknownStream
	}
	d.volumes[stream] = clampVolume(volume, maxVolume)

	return nil
}

// StreamMaxVolume 지정된 스트림의 최대 볼륨을 반환합니다.
func (d *Device) StreamMaxVolume(stream platform.Stream) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	maxVolume, ok := d.maxVolumes[stream]
	if !ok {
		return 0, platform.ErrUnknownStream
	}
	return maxVolume, nil
}

//
// platform.ConnectivityController
//

// AirplaneModeEnabled 비행기 모드 활성화 여부를 반환합니다.
func (d *Device) AirplaneModeEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.airplaneMode
}

// SetAirplaneMode 비행기 모드를 설정합니다.
func (d *Device) SetAirplaneMode(enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.airplaneMode = enabled
	return nil
}

//
// platform.PowerController
//

// ScreenOn 화면이 켜져 있는지 여부를 반환합니다.
func (d *Device) ScreenOn() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.screenOn, nil
}

// WakeUp 꺼져 있는 화면을 켭니다. 이미 켜져 있으면 아무런 효과가 없습니다.
func (d *Device) WakeUp() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.screenOn = true
	return nil
}

// Uptime 디바이스 부팅(객체 생성) 후 경과 시간을 반환합니다.
func (d *Device) Uptime() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return time.Since(d.bootTime)
}

// ElapsedRealtimeNanos 디바이스 부팅 후 경과 시간을 나노초 단위로 반환합니다.
func (d *Device) ElapsedRealtimeNanos() int64 {
	return d.Uptime().Nanoseconds()
}

//
// platform.Clock
//

// SetTime 시스템 시각을 지정된 값으로 변경합니다.
// 실제 호스트 OS의 시각은 건드리지 않고 오프셋으로만 반영됩니다.
func (d *Device) SetTime(t time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clockOffset = time.Until(t)
	return nil
}

// Now 오프셋이 반영된 디바이스의 현재 시각을 반환합니다.
func (d *Device) Now() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return time.Now().Add(d.clockOffset)
}

func clampVolume(volume, maxVolume int) int {
	if volume < 0 {
		return 0
	}
	if volume > maxVolume {
		return maxVolume
	}
	return volume
}
