package alert

// NoopSender 모든 발송 요청을 무시하는 AlertSender 구현체입니다.
// 알림 전달이 필요 없는 테스트나 단독 실행 환경에서 사용됩니다.
type NoopSender struct{}

// NewNoopSender 새로운 NoopSender 객체를 생성하여 반환합니다.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) Notify(string) error {
	return nil
}

func (s *NoopSender) NotifyWithError(string) error {
	return nil
}
