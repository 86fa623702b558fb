package contract

// AlertSender 운영 알림 발송 기능을 제공하는 인터페이스입니다.
// Settings, Scheduler, API와 같은 클라이언트는 이 인터페이스를 통해 알림 서비스를 사용합니다.
type AlertSender interface {
	// Notify 알림 메시지를 발송합니다.
	//
	// 반환값:
	//   - error: 발송 요청이 정상적으로 큐에 등록(실제 전송 결과와는 무관)되면 nil, 실패 시 에러 반환
	Notify(message string) error

	// NotifyWithError "오류" 성격의 알림 메시지를 발송합니다.
	// 시스템 내부 에러, 작업 실패 등 관리자의 주의가 필요한 긴급 상황 알림에 적합합니다.
	NotifyWithError(message string) error
}
