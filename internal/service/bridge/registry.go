package bridge

import (
	"sync"

	"github.com/darkkaiser/setting-server/internal/service/contract"
)

// Registry 진행 중인 작업 인스턴스들의 중앙 레지스트리입니다.
//
// 작업 인스턴스 ID를 키로 하며, 제출 측과 호스트 측이 공유하는 유일한
// 접점입니다. 모든 연산은 고루틴 안전합니다.
type Registry struct {
	mu    sync.Mutex
	tasks map[contract.TaskInstanceID]*Task
}

// NewRegistry 새로운 Registry 객체를 생성하여 반환합니다.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[contract.TaskInstanceID]*Task),
	}
}

// Put 작업을 레지스트리에 등록합니다.
// 동일한 ID가 이미 등록되어 있으면 기존 항목을 덮어쓰지 않고 false를 반환합니다.
func (r *Registry) Put(t *Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.InstanceID()]; exists {
		return false
	}
	r.tasks[t.InstanceID()] = t

	return true
}

// Lookup 지정된 ID의 작업을 레지스트리에서 제거하지 않고 조회합니다.
func (r *Registry) Lookup(id contract.TaskInstanceID) (*Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	return t, ok
}

// Take 지정된 ID의 작업을 조회와 동시에 레지스트리에서 제거합니다.
//
// 완료 경로와 취소 경로가 모두 이 연산을 사용하므로, 하나의 작업에 대해
// 정확히 한 쪽만 항목을 획득하게 됩니다.
func (r *Registry) Take(id contract.TaskInstanceID) (*Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if ok {
		delete(r.tasks, id)
	}

	return t, ok
}

// Remove 지정된 ID의 작업을 레지스트리에서 제거합니다.
// 이미 제거된 ID에 대한 호출은 아무런 효과가 없습니다.
func (r *Registry) Remove(id contract.TaskInstanceID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, id)
}

// Len 현재 등록된 작업의 개수를 반환합니다.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tasks)
}
