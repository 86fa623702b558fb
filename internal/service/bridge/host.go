package bridge

import (
	"github.com/darkkaiser/setting-server/internal/platform"
)

// OnHostStart 디스플레이 호스트 기동 콜백입니다. 플랫폼의 호스트 실행 루프에서 호출됩니다.
//
// 호스트의 런치 ID로 레지스트리를 조회하여 대응하는 작업을 찾고, 작업이
// 존재하면 단 한 번 실행한 후 결과를 기록하고 호스트를 파기합니다.
//
// 런치 ID에 대응하는 작업이 레지스트리에 없으면 오래된(stale) 기동으로
// 간주합니다. 프로세스 재시작 등으로 제출 측 상태가 사라진 뒤 플랫폼이
// 호스트를 뒤늦게 복원한 경우로, 어떠한 작업도 실행하지 않고 호스트를
// 조용히 파기하는 것이 유일하게 안전한 동작입니다.
func (e *Executor) OnHostStart(host platform.DisplayHost) {
	id := host.LaunchID()
	logger := e.logger.WithField("task_instance_id", id)

	t, ok := e.registry.Lookup(id)
	if !ok {
		logger.Warn("런치 ID에 대응하는 작업이 없습니다. 오래된 호스트를 파기합니다.")
		e.launcher.RequestDestroy(host)
		return
	}

	logger.Debug("디스플레이 호스트가 기동되어 작업을 실행합니다.")

	value, err := runWork(t.work, host)
	if err != nil {
		if !t.fail(err) {
			// 취소가 먼저 확정된 작업의 결과는 기록하지 않고 폐기합니다.
			logger.WithError(err).Debug("이미 취소 확정된 작업의 실패 결과를 폐기합니다.")
		} else {
			logger.WithError(err).Error("작업 실행이 실패하였습니다.")
		}
	} else {
		if !t.complete(value) {
			logger.Debug("이미 취소 확정된 작업의 성공 결과를 폐기합니다.")
		} else {
			logger.Debug("작업 실행이 완료되었습니다.")
		}
	}

	// 취소 경로에서 먼저 제거되었을 수 있으므로 멱등 제거를 사용합니다.
	e.registry.Remove(id)
	e.launcher.RequestDestroy(host)
}

// runWork 작업 본문을 실행합니다. 본문에서 발생한 패닉은 호스트의 실행 루프로
// 전파되지 않고 해당 작업의 실패 결과로 변환됩니다.
func runWork(work Work, host platform.DisplayHost) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = newWorkPanicError(r)
		}
	}()

	return work.Run(host)
}
