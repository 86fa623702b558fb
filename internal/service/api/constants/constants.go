// Package constants API 서비스 전반에서 사용되는 상수들을 정의합니다.
package constants

import "time"

// 로깅 시 로그의 발생 위치(컴포넌트)를 식별하기 위한 상수입니다.
const (
	// ComponentService 서비스 로그의 컴포넌트 이름입니다.
	ComponentService = "api.service"

	// ComponentHandler 핸들러 로그의 컴포넌트 이름입니다.
	ComponentHandler = "api.handler"

	// ComponentMiddleware 미들웨어 로그의 컴포넌트 이름입니다.
	ComponentMiddleware = "api.middleware"

	// ComponentErrorHandler 에러 핸들러 로그의 컴포넌트 이름입니다.
	ComponentErrorHandler = "api.error_handler"
)

// API 요청 시 사용되는 파라미터 키 및 HTTP 헤더 키 상수입니다.
const (
	// QueryParamAppKey 애플리케이션 인증용 쿼리 파라미터 키 (레거시)
	QueryParamAppKey = "app_key"

	// HeaderXAppKey 애플리케이션 인증용 HTTP 헤더 키 (권장 방식)
	HeaderXAppKey = "X-App-Key"

	// HeaderXApplicationID 애플리케이션 식별용 HTTP 헤더 키
	HeaderXApplicationID = "X-Application-Id"
)

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간
	// 요청 처리가 이 시간을 초과하면 자동으로 취소되어 서버 리소스를 보호합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간
	// 헤더를 매우 느리게 전송하는 Slowloris 형태의 연결 고갈 공격을 방지합니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout HTTP 요청 본문 읽기 최대 대기 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout HTTP 응답 쓰기 최대 대기 시간
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	DefaultMaxBodySize = "128K"

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수 기본값
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량 기본값
	DefaultRateLimitBurst = 40
)

// 클라이언트에게 반환되는 표준 에러 메시지 상수입니다.
const (
	// ErrMsgBadRequest 400 Bad Request 에러 메시지입니다.
	ErrMsgBadRequest = "잘못된 요청입니다"

	// ErrMsgNotFound 404 Not Found 에러 메시지입니다.
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// ErrMsgTooManyRequests 429 Too Many Requests 에러 메시지입니다.
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// ErrMsgInternalServer 500 Internal Server Error 메시지입니다.
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// ErrMsgAppKeyRequired app_key 파라미터가 누락되었을 때의 에러 메시지입니다.
	ErrMsgAppKeyRequired = "app_key는 필수입니다 (X-App-Key 헤더 또는 app_key 쿼리 파라미터)"
)

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyDevice 외부 의존성 ID: 디바이스
	DependencyDevice = "device"

	// MsgDepStatusHealthy 외부 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중"

	// MsgDepStatusNotRunning 외부 의존성 상태: 중지됨
	MsgDepStatusNotRunning = "디바이스가 실행 중이지 않음"
)
