package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로깅 시스템이 점유한 파일 리소스의 해제를 통합 관리합니다.
//
// 주요 특징:
//   - 원자적 종료 보장: 일부 리소스 닫기에 실패하더라도 나머지 리소스들의 Close()를 강제로 수행합니다.
//   - Idempotency 보장: Close()를 여러 번 호출해도 안전하며, 두 번째 이후 호출은 즉시 nil을 반환합니다.
type closer struct {
	closers []io.Closer

	// closed 중복 Close() 호출을 방지하기 위한 원자적 플래그 (0: open, 1: closed)
	closed int32
}

func (c *closer) Close() error {
	// Idempotency 보장: 이미 닫힌 경우 즉시 반환
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}

	// 일부 리소스 닫기에 실패하더라도 중단하지 않고 모든 리소스 해제를 시도합니다.
	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// nopCloser 해제할 리소스가 없을 때 반환되는 Closer입니다.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
