package memdevice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
)

// hostRecorder 기동된 호스트를 수집하는 테스트용 HostStartHandler입니다.
type hostRecorder struct {
	mu    sync.Mutex
	hosts []platform.DisplayHost
}

func (r *hostRecorder) OnHostStart(host platform.DisplayHost) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hosts = append(r.hosts, host)
}

func (r *hostRecorder) startedHosts() []platform.DisplayHost {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]platform.DisplayHost(nil), r.hosts...)
}

// startDevice 디바이스 서비스를 시작하고 테스트 종료 시 정리합니다.
func startDevice(t *testing.T, opts Options, handler platform.HostStartHandler) *Device {
	t.Helper()

	d := New(opts)
	d.SetHostStartHandler(handler)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, d.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	return d
}

// TestDevice_Start_WithoutHandler 기동 콜백 수신자 없이 서비스를 시작하면
// 에러가 반환되는지 검증합니다.
func TestDevice_Start_WithoutHandler(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)

	err := d.Start(ctx, wg)
	assert.ErrorIs(t, err, ErrHostStartHandlerNotSet)

	// 실패한 Start()도 WaitGroup을 정리해야 한다.
	wg.Wait()
}

// TestDevice_Start_Twice 중복 시작이 에러 없이 무시되는지 검증합니다.
func TestDevice_Start_Twice(t *testing.T) {
	t.Parallel()

	d := startDevice(t, DefaultOptions(), &hostRecorder{})

	wg := &sync.WaitGroup{}
	wg.Add(1)

	assert.NoError(t, d.Start(context.Background(), wg))
	wg.Wait()
}

// TestDevice_HostLifecycle 호스트의 생성 요청부터 기동 콜백, 파기까지의
// 수명주기를 검증합니다.
func TestDevice_HostLifecycle(t *testing.T) {
	t.Parallel()

	recorder := &hostRecorder{}
	d := startDevice(t, DefaultOptions(), recorder)

	require.NoError(t, d.RequestCreate(contract.TaskInstanceID("task1")))

	assert.Eventually(t, func() bool {
		return len(recorder.startedHosts()) == 1
	}, time.Second, 5*time.Millisecond)

	hosts := recorder.startedHosts()
	require.Len(t, hosts, 1)
	assert.Equal(t, contract.TaskInstanceID("task1"), hosts[0].LaunchID())
	assert.Equal(t, 1, d.LiveHostCount())

	d.RequestDestroy(hosts[0])

	assert.Eventually(t, func() bool {
		return d.LiveHostCount() == 0
	}, time.Second, 5*time.Millisecond)
}

// TestDevice_RequestDestroy_Twice 중복 파기 요청이 무시되는지 검증합니다.
func TestDevice_RequestDestroy_Twice(t *testing.T) {
	t.Parallel()

	recorder := &hostRecorder{}
	d := startDevice(t, DefaultOptions(), recorder)

	require.NoError(t, d.RequestCreate(contract.TaskInstanceID("task1")))

	assert.Eventually(t, func() bool {
		return len(recorder.startedHosts()) == 1
	}, time.Second, 5*time.Millisecond)

	host := recorder.startedHosts()[0]
	d.RequestDestroy(host)
	d.RequestDestroy(host)

	assert.Eventually(t, func() bool {
		return d.LiveHostCount() == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, d.LiveHostCount(), "중복 파기 요청으로 호스트 개수가 음수가 되어서는 안됩니다")
}

// TestDevice_RequestCreate_NotRunning 시작되지 않은 디바이스에 대한 생성 요청이
// 거부되는지 검증합니다.
func TestDevice_RequestCreate_NotRunning(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())

	err := d.RequestCreate(contract.TaskInstanceID("task1"))
	assert.ErrorIs(t, err, ErrDeviceNotRunning)
}

// TestDevice_RequestCreate_HostCreateErr 생성 에러가 설정된 디바이스는 모든
// 생성 요청을 거부하는지 검증합니다.
func TestDevice_RequestCreate_HostCreateErr(t *testing.T) {
	t.Parallel()

	createErr := errors.New("host creation rejected")

	opts := DefaultOptions()
	opts.HostCreateErr = createErr

	recorder := &hostRecorder{}
	d := startDevice(t, opts, recorder)

	err := d.RequestCreate(contract.TaskInstanceID("task1"))
	assert.ErrorIs(t, err, createErr)
	assert.Empty(t, recorder.startedHosts())
}

// TestDevice_Health 디바이스의 동작 상태 점검을 검증합니다.
func TestDevice_Health(t *testing.T) {
	t.Parallel()

	t.Run("시작되지 않은 디바이스", func(t *testing.T) {
		t.Parallel()

		d := New(DefaultOptions())
		assert.ErrorIs(t, d.Health(), ErrDeviceNotRunning)
	})

	t.Run("실행 중인 디바이스", func(t *testing.T) {
		t.Parallel()

		d := startDevice(t, DefaultOptions(), &hostRecorder{})
		assert.NoError(t, d.Health())
	})
}

// TestDevice_Shutdown 서비스 중지 후 생성 요청이 거부되고 파기 요청이
// 직접 처리되는지 검증합니다.
func TestDevice_Shutdown(t *testing.T) {
	t.Parallel()

	recorder := &hostRecorder{}

	d := New(DefaultOptions())
	d.SetHostStartHandler(recorder)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, d.Start(ctx, wg))

	require.NoError(t, d.RequestCreate(contract.TaskInstanceID("task1")))

	assert.Eventually(t, func() bool {
		return len(recorder.startedHosts()) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	wg.Wait()

	assert.ErrorIs(t, d.Health(), ErrDeviceNotRunning)
	assert.ErrorIs(t, d.RequestCreate(contract.TaskInstanceID("task2")), ErrDeviceNotRunning)

	// 메인 루프 종료 후의 파기 요청은 직접 처리된다.
	d.RequestDestroy(recorder.startedHosts()[0])
	assert.Equal(t, 0, d.LiveHostCount())
}

// TestDisplayHost_SetAttributes 파기된 호스트에 대한 속성 변경이 거부되는지 검증합니다.
func TestDisplayHost_SetAttributes(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())
	host := newDisplayHost(d, contract.TaskInstanceID("task1"))

	assert.Equal(t, float64(-1), host.Attributes().Brightness, "초기 밝기는 시스템 설정을 따르는 상태여야 합니다")

	require.NoError(t, host.SetAttributes(platform.DisplayAttributes{Brightness: 0.5}))
	assert.Equal(t, 0.5, host.Attributes().Brightness)

	require.True(t, host.markDestroyed())
	assert.False(t, host.markDestroyed())

	err := host.SetAttributes(platform.DisplayAttributes{Brightness: 0.7})
	assert.ErrorIs(t, err, ErrHostDestroyed)
	assert.Equal(t, 0.5, host.Attributes().Brightness)
}
