package memdevice

import (
	"sync"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
)

// ErrHostDestroyed 이미 파기된 디스플레이 호스트에 대한 조작 시 반환되는 에러입니다.
var ErrHostDestroyed = apperrors.New(apperrors.Internal, "이미 파기된 디스플레이 호스트입니다")

// displayHost 메인 루프가 생성하는 일시적인 디스플레이 실행 컨텍스트입니다.
type displayHost struct {
	device   *Device
	launchID contract.TaskInstanceID

	mu        sync.Mutex
	attrs     platform.DisplayAttributes
	destroyed bool
}

func newDisplayHost(device *Device, launchID contract.TaskInstanceID) *displayHost {
	return &displayHost{
		device:   device,
		launchID: launchID,

		// 윈도우 속성의 밝기는 시스템 설정을 따르는 상태로 시작합니다.
		attrs: platform.DisplayAttributes{Brightness: -1},
	}
}

// LaunchID 호스트 생성 요청에 함께 전달된 작업 인스턴스 ID를 반환합니다.
func (h *displayHost) LaunchID() contract.TaskInstanceID {
	return h.launchID
}

// Attributes 현재 윈도우 속성을 반환합니다.
func (h *displayHost) Attributes() platform.DisplayAttributes {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attrs
}

// SetAttributes 윈도우 속성을 변경합니다. 파기된 호스트에 대해서는 실패합니다.
func (h *displayHost) SetAttributes(attrs platform.DisplayAttributes) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.destroyed {
		return ErrHostDestroyed
	}
	h.attrs = attrs

	return nil
}

// markDestroyed 호스트를 파기 상태로 전환합니다.
// 최초 호출에서만 true를 반환하며, 중복 호출은 무시됩니다.
func (h *displayHost) markDestroyed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.destroyed {
		return false
	}
	h.destroyed = true

	return true
}
