// Package bridge 호출자 고루틴과 디스플레이 호스트 사이의 작업 실행 브리지를 제공합니다.
//
// 호출자는 Executor.Submit()을 통해 하나의 작업(Work)을 제출하고 결과를
// 동기적으로 돌려받습니다. 작업은 플랫폼이 기동한 일시적인 디스플레이 호스트
// 위에서 단 한 번 실행되며, 작업 인스턴스 ID가 제출 측과 호스트 측을 잇는
// 유일한 상관관계 키입니다.
package bridge

import (
	"sync"

	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
)

// Work 디스플레이 호스트 위에서 단 한 번 실행되는 작업 단위입니다.
type Work interface {
	// Run 기동된 호스트를 전달받아 작업을 수행하고 결과값을 반환합니다.
	Run(host platform.DisplayHost) (any, error)
}

// WorkFunc 함수를 Work 인터페이스로 사용할 수 있게 하는 어댑터입니다.
type WorkFunc func(host platform.DisplayHost) (any, error)

func (f WorkFunc) Run(host platform.DisplayHost) (any, error) {
	return f(host)
}

// State 작업의 수명주기 상태입니다.
type State int

const (
	// StatePending 결과가 아직 기록되지 않은 상태 (Zero Value 안전성 확보)
	StatePending State = iota
	// StateSucceeded 작업이 정상적으로 완료되어 결과값이 기록된 상태
	StateSucceeded
	// StateFailed 작업 실행이 에러 또는 패닉으로 종료된 상태
	StateFailed
	// StateCancelled 작업이 시작 전 또는 실행 중에 취소 확정된 상태
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Terminal 종결 상태인지 여부를 반환합니다.
func (s State) Terminal() bool {
	return s != StatePending
}

// Outcome 종결된 작업의 최종 결과입니다.
type Outcome struct {
	State State
	Value any
	Err   error
}

// Task 제출된 하나의 작업 인스턴스입니다.
//
// 결과 슬롯은 1회 기록(write-once) 규칙을 따릅니다. 완료, 실패, 취소 중
// 가장 먼저 도달한 전이만 성공하며, 이후의 전이 시도는 모두 무시됩니다.
// 첫 종결 전이 시점에 done 채널이 닫혀 대기 중인 제출자를 깨웁니다.
type Task struct {
	instanceID contract.TaskInstanceID
	work       Work

	mu    sync.Mutex
	state State
	value any
	err   error
	done  chan struct{}
}

func newTask(instanceID contract.TaskInstanceID, work Work) *Task {
	return &Task{
		instanceID: instanceID,
		work:       work,
		done:       make(chan struct{}),
	}
}

// InstanceID 작업 인스턴스 ID를 반환합니다.
func (t *Task) InstanceID() contract.TaskInstanceID {
	return t.instanceID
}

// State 현재 상태를 반환합니다.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done 작업이 종결되면 닫히는 채널을 반환합니다.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Outcome 종결된 작업의 최종 결과를 반환합니다.
// 아직 종결되지 않았다면 StatePending 상태의 결과가 반환됩니다.
func (t *Task) Outcome() Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Outcome{State: t.state, Value: t.value, Err: t.err}
}

// complete 작업을 성공 상태로 종결하고 결과값을 기록합니다.
// 이미 종결된 경우에는 아무것도 기록하지 않고 false를 반환합니다.
func (t *Task) complete(value any) bool {
	return t.transition(StateSucceeded, value, nil)
}

// fail 작업을 실패 상태로 종결하고 에러를 기록합니다.
// 이미 종결된 경우에는 아무것도 기록하지 않고 false를 반환합니다.
func (t *Task) fail(err error) bool {
	return t.transition(StateFailed, nil, err)
}

// cancel 작업을 취소 상태로 종결합니다.
// 이미 종결된 경우에는 아무것도 기록하지 않고 false를 반환합니다.
func (t *Task) cancel(err error) bool {
	return t.transition(StateCancelled, nil, err)
}

func (t *Task) transition(state State, value any, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Terminal() {
		return false
	}

	t.state = state
	t.value = value
	t.err = err
	close(t.done)

	return true
}
