package bridge

import (
	"context"
	"time"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
	applog "github.com/darkkaiser/setting-server/pkg/log"
	"github.com/sirupsen/logrus"
)

// Executor 작업 제출부터 결과 수신까지의 전체 흐름을 관장합니다.
//
// 제출 순서는 반드시 '레지스트리 등록 → 호스트 생성 요청' 이어야 합니다.
// 호스트는 기동 직후 레지스트리를 조회하므로, 등록이 늦으면 정상적인 제출이
// 오래된(stale) 제출로 오인되어 작업이 실행되지 않은 채 소멸합니다.
type Executor struct {
	idGen    contract.IDGenerator
	launcher platform.HostLauncher
	registry *Registry

	logger *logrus.Entry
}

// NewExecutor 새로운 Executor 객체를 생성하여 반환합니다.
func NewExecutor(idGen contract.IDGenerator, launcher platform.HostLauncher) *Executor {
	return &Executor{
		idGen:    idGen,
		launcher: launcher,
		registry: NewRegistry(),

		logger: applog.WithComponent("bridge.executor"),
	}
}

// Registry 작업 레지스트리를 반환합니다.
func (e *Executor) Registry() *Registry {
	return e.registry
}

// Submit 작업을 제출하고 종결될 때까지 대기한 후 결과값을 반환합니다.
//
// 제한 시간 없이 대기하며, 호출자 컨텍스트가 취소되면 제출도 함께 취소됩니다.
func (e *Executor) Submit(ctx context.Context, work Work) (any, error) {
	return e.SubmitWithTimeout(ctx, work, 0)
}

// SubmitWithTimeout 작업을 제출하고 지정된 제한 시간까지 종결을 대기합니다.
//
// timeout이 0 이하이면 제한 시간 없이 대기합니다. 제한 시간이 만료되거나
// 호출자 컨텍스트가 취소되면 작업의 취소 확정을 시도하는데, 이는 약한
// 취소(Weak Cancellation)입니다. 이미 실행 중인 작업 본문은 중단되지 않고
// 끝까지 실행되지만, 취소가 확정된 이후에 도착한 결과는 기록되지 않고
// 폐기됩니다. 반대로 취소 확정 직전에 결과가 먼저 기록되었다면 취소는
// 패배한 것으로 보고 기록된 결과를 그대로 반환합니다.
func (e *Executor) SubmitWithTimeout(ctx context.Context, work Work, timeout time.Duration) (any, error) {
	if work == nil {
		return nil, ErrNilWork
	}
	if ctx == nil {
		ctx = context.Background()
	}

	t := newTask(e.idGen.New(), work)
	logger := e.logger.WithField("task_instance_id", t.InstanceID())

	// 호스트 생성 요청보다 등록이 먼저 완료되어야 합니다.
	if !e.registry.Put(t) {
		// ID 생성기가 고유성을 보장하므로 도달할 수 없는 경로입니다.
		return nil, apperrors.New(apperrors.Internal, "작업 인스턴스 ID가 중복되어 작업을 등록할 수 없습니다")
	}

	logger.Debug("작업 제출 완료, 디스플레이 호스트 생성을 요청합니다.")

	if err := e.launcher.RequestCreate(t.InstanceID()); err != nil {
		// 생성 실패는 재시도 없이 즉시 실패로 종결합니다.
		e.registry.Remove(t.InstanceID())
		logger.WithError(err).Error("디스플레이 호스트 생성 요청이 거부되었습니다.")
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "디스플레이 호스트를 생성할 수 없습니다")
	}

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case <-t.Done():
		return e.settledResult(t)

	case <-timeoutC:
		logger.WithField("timeout", timeout).Warn("제한 시간이 만료되어 작업 취소를 시도합니다.")
		return e.cancelOrSettle(t, ErrSubmitTimeout)

	case <-ctx.Done():
		logger.WithError(ctx.Err()).Warn("호출자 컨텍스트가 취소되어 작업 취소를 시도합니다.")
		return e.cancelOrSettle(t, ErrSubmitCancelled)
	}
}

// cancelOrSettle 작업의 취소 확정을 시도하고, 경합에서 패배한 경우에는
// 이미 기록된 결과를 반환합니다.
func (e *Executor) cancelOrSettle(t *Task, cancelErr error) (any, error) {
	if t.cancel(cancelErr) {
		// 취소가 확정된 작업은 더 이상 호스트 측에서 조회될 필요가 없습니다.
		e.registry.Remove(t.InstanceID())
		return nil, cancelErr
	}

	// 취소 직전에 결과가 먼저 기록되었습니다.
	return e.settledResult(t)
}

// settledResult 종결된 작업의 결과 슬롯을 읽어 호출자에게 반환할 형태로 변환합니다.
func (e *Executor) settledResult(t *Task) (any, error) {
	out := t.Outcome()

	switch out.State {
	case StateSucceeded:
		return out.Value, nil
	case StateFailed:
		return nil, out.Err
	case StateCancelled:
		return nil, out.Err
	default:
		// done 채널이 닫힌 시점에는 반드시 종결 상태입니다.
		return nil, apperrors.New(apperrors.Internal, "종결되지 않은 작업의 결과가 요청되었습니다")
	}
}
