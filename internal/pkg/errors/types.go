package errors

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Unauthorized 인증 실패 (유효하지 않은 APP_KEY 등)
	Unauthorized

	// Forbidden 권한 없음 (접근 권한 부족)
	Forbidden

	// InvalidInput 잘못된 입력값 (유효성 검사 실패)
	InvalidInput

	// Conflict 리소스 충돌 (중복 생성 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 비즈니스 로직 수행 실패 (작업 실행 중 오류 등)
	ExecutionFailed

	// Timeout 작업 결과 대기 시간 초과
	Timeout

	// Cancelled 호출자에 의해 작업이 취소됨
	Cancelled

	// Unavailable 서비스 또는 플랫폼 리소스 일시적 사용 불가
	Unavailable
)

// String ErrorType을 로그 출력용 문자열로 변환합니다.
func (t ErrorType) String() string {
	switch t {
	case Internal:
		return "Internal"
	case System:
		return "System"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case InvalidInput:
		return "InvalidInput"
	case Conflict:
		return "Conflict"
	case NotFound:
		return "NotFound"
	case ExecutionFailed:
		return "ExecutionFailed"
	case Timeout:
		return "Timeout"
	case Cancelled:
		return "Cancelled"
	case Unavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}
