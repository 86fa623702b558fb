package bridge

import (
	"fmt"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
)

var (
	// ErrNilWork Submit() 호출 시 실행할 작업이 전달되지 않았을 때 반환되는 에러입니다.
	ErrNilWork = apperrors.New(apperrors.InvalidInput, "실행할 작업이 지정되지 않았습니다")

	// ErrSubmitTimeout 제한 시간 내에 작업이 종결되지 않아 제출이 취소되었을 때 반환되는 에러입니다.
	// 취소는 약한 취소(Weak Cancellation)로, 이미 실행 중인 작업 본문을 중단시키지는 않습니다.
	ErrSubmitTimeout = apperrors.New(apperrors.Timeout, "작업 실행이 제한 시간 내에 완료되지 않았습니다")

	// ErrSubmitCancelled 호출자의 컨텍스트가 취소되어 제출이 취소되었을 때 반환되는 에러입니다.
	ErrSubmitCancelled = apperrors.New(apperrors.Cancelled, "작업 실행 요청이 취소되었습니다")

	// ErrHostCreationFailed 플랫폼이 디스플레이 호스트 생성 요청을 거부했을 때 반환되는 에러입니다.
	// 생성 실패는 재시도하지 않으며 해당 제출은 즉시 실패로 종결됩니다.
	ErrHostCreationFailed = apperrors.New(apperrors.Unavailable, "디스플레이 호스트를 생성할 수 없습니다")
)

// newWorkPanicError 작업 본문 실행 중 발생한 패닉을 실패 결과로 변환합니다.
// 패닉은 호스트의 실행 루프를 전파되지 않고 해당 작업의 실패로만 기록됩니다.
func newWorkPanicError(v any) error {
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("작업 실행 중 예기치 않은 내부 오류가 발생하였습니다 (상세: %v)", v))
}
