package memdevice

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
	applog "github.com/darkkaiser/setting-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrDeviceNotRunning 디바이스가 실행 중이 아닐 때 호스트 관련 요청에 대해 반환되는 에러입니다.
	ErrDeviceNotRunning = apperrors.New(apperrors.Unavailable, "디바이스가 현재 실행 중이지 않아 요청을 수행할 수 없습니다")

	// ErrHostStartHandlerNotSet 호스트 기동 콜백 수신자가 등록되지 않은 채 서비스가 시작되었을 때 반환되는 에러입니다.
	ErrHostStartHandlerNotSet = apperrors.New(apperrors.Internal, "HostStartHandler 객체가 초기화되지 않았습니다")
)

// Start 디바이스 서비스를 시작하여 디스플레이 호스트 메인 루프를 가동합니다.
func (d *Device) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	d.runningMu.Lock()
	defer d.runningMu.Unlock()

	applog.WithComponent("memdevice").Info("Device 서비스 시작중...")

	d.mu.Lock()
	handler := d.handler
	d.mu.Unlock()

	if handler == nil {
		defer serviceStopWG.Done()
		return ErrHostStartHandlerNotSet
	}

	if d.running {
		defer serviceStopWG.Done()
		applog.WithComponent("memdevice").Warn("Device 서비스가 이미 시작됨!!!")
		return nil
	}

	go d.run(serviceStopCtx, serviceStopWG, handler)

	d.running = true

	applog.WithComponent("memdevice").Info("Device 서비스 시작됨")

	return nil
}

// run 디스플레이 호스트의 생성과 파기를 직렬화하는 메인 루프입니다.
// UI 스레드를 본뜬 것으로, 모든 호스트 수명주기 이벤트는 이 고루틴을 거칩니다.
func (d *Device) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, handler platform.HostStartHandler) {
	defer serviceStopWG.Done()

	for {
		select {
		case id := <-d.createC:
			d.handleCreate(id, handler)

		case host := <-d.destroyC:
			d.handleDestroy(host)

		case <-serviceStopCtx.Done():
			applog.WithComponent("memdevice").Info("Device 서비스 중지중...")

			d.runningMu.Lock()
			d.running = false
			d.runningMu.Unlock()

			close(d.stopC)

			applog.WithComponent("memdevice").Info("Device 서비스 중지됨")

			return
		}
	}
}

func (d *Device) handleCreate(id contract.TaskInstanceID, handler platform.HostStartHandler) {
	// 메인 루프의 점유 상황 시뮬레이션. 지연 중에는 후속 생성/파기 처리도 함께 밀립니다.
	if d.hostCreateDelay > 0 {
		time.Sleep(d.hostCreateDelay)
	}

	host := newDisplayHost(d, id)

	d.mu.Lock()
	d.liveHosts++
	d.mu.Unlock()

	applog.WithComponentAndFields("memdevice", log.Fields{
		"task_instance_id": id,
	}).Debug("디스플레이 호스트 생성됨")

	// 기동 콜백은 호스트 자체의 실행 고루틴에서 호출되므로 메인 루프를 점유하지 않습니다.
	go handler.OnHostStart(host)
}

func (d *Device) handleDestroy(host *displayHost) {
	if !host.markDestroyed() {
		return
	}

	d.mu.Lock()
	d.liveHosts--
	d.mu.Unlock()

	applog.WithComponentAndFields("memdevice", log.Fields{
		"task_instance_id": host.LaunchID(),
	}).Debug("디스플레이 호스트 파기됨")
}

//
// platform.HostLauncher
//

// RequestCreate 지정된 작업 인스턴스 ID를 런치 파라미터로 하는
// 디스플레이 호스트의 생성을 메인 루프에 비동기로 요청합니다.
func (d *Device) RequestCreate(id contract.TaskInstanceID) error {
	d.runningMu.Lock()
	running := d.running
	d.runningMu.Unlock()

	if !running {
		return ErrDeviceNotRunning
	}

	if d.hostCreateErr != nil {
		return d.hostCreateErr
	}

	select {
	case d.createC <- id:
		return nil
	case <-d.stopC:
		return ErrDeviceNotRunning
	}
}

// RequestDestroy 지정된 호스트의 파기를 메인 루프에 요청합니다. 중복 호출은 무시됩니다.
func (d *Device) RequestDestroy(host platform.DisplayHost) {
	h, ok := host.(*displayHost)
	if !ok {
		return
	}

	select {
	case <-d.stopC:
		// 메인 루프가 이미 종료되었으므로 직접 파기 상태로 전환합니다.
		if h.markDestroyed() {
			d.mu.Lock()
			d.liveHosts--
			d.mu.Unlock()
		}
	default:
		select {
		case d.destroyC <- h:
		case <-d.stopC:
			if h.markDestroyed() {
				d.mu.Lock()
				d.liveHosts--
				d.mu.Unlock()
			}
		}
	}
}

// Health 디바이스 메인 루프의 동작 상태를 반환합니다.
// 메인 루프가 실행 중이 아니면 ErrDeviceNotRunning을 반환합니다.
func (d *Device) Health() error {
	d.runningMu.Lock()
	defer d.runningMu.Unlock()

	if !d.running {
		return ErrDeviceNotRunning
	}
	return nil
}

// LiveHostCount 현재 살아있는 디스플레이 호스트의 개수를 반환합니다.
func (d *Device) LiveHostCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.liveHosts
}
