package settings

import (
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/bridge"
)

// newBrightnessWork 디스플레이 호스트의 윈도우 밝기를 변경하는 작업을 생성합니다.
//
// 저장소에 기록된 0~255 범위의 밝기 값을 0.0~1.0 비율로 환산하여 호스트의
// 윈도우 속성에 적용합니다. 윈도우 속성은 호스트가 살아있는 동안에만
// 조작할 수 있으므로, 이 작업은 반드시 브리지를 통해 실행되어야 합니다.
func newBrightnessWork(value int) bridge.Work {
	return bridge.WorkFunc(func(host platform.DisplayHost) (any, error) {
		attrs := host.Attributes()
		attrs.Brightness = float64(value) / float64(BrightnessMax)

		if err := host.SetAttributes(attrs); err != nil {
			return nil, err
		}

		return value, nil
	})
}
