// Package service 애플리케이션을 구성하는 서비스들의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 애플리케이션 생명주기에 따라 시작/종료되는 서비스의 공통 인터페이스입니다.
//
// Start()는 즉시 반환되어야 하며, 실제 작업은 내부 고루틴에서 수행됩니다.
// serviceStopCtx가 취소되면 서비스는 정리 작업을 수행한 후
// serviceStopWG.Done()을 호출하여 종료 완료를 알려야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
