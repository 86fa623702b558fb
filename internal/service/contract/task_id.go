// Package contract 서비스 간에 공유되는 타입과 인터페이스 계약을 정의합니다.
//
// 브리지(bridge)와 플랫폼(platform)처럼 서로를 직접 참조할 수 없는 패키지들이
// 이 패키지의 타입을 통해 결합도를 낮춘 상태로 협력합니다.
package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
)

// TaskInstanceID 실행 중인 작업 인스턴스의 프로세스 전역 고유 식별자입니다.
//
// 작업 제출 시점에 발급되며, 디스플레이 호스트 생성 요청의 런치 파라미터로 전달되어
// 호스트가 자신이 실행해야 할 작업을 역으로 찾아내는 상관 키(Correlation Key)로 사용됩니다.
type TaskInstanceID string

// Validate TaskInstanceID가 유효한 값인지 검증합니다.
func (id TaskInstanceID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return apperrors.New(apperrors.InvalidInput, "TaskInstanceID가 비어 있습니다")
	}
	return nil
}
