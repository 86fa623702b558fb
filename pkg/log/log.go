// Package log 애플리케이션 전역 로깅 유틸리티를 제공합니다.
//
// logrus 표준 로거를 기반으로 컴포넌트 단위의 구조화된 로깅을 지원하며,
// lumberjack을 통한 로그 파일 로테이션을 함께 구성합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// fieldComponent 로그 엔트리에서 컴포넌트 이름을 담는 필드 키입니다.
const fieldComponent = "component"

// StandardLogger 전역 logrus 표준 로거를 반환합니다.
// 외부 라이브러리(Echo, Cron 등)의 로거 통합에 사용됩니다.
func StandardLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

// SetDebugMode 디버그 모드 여부에 따라 전역 로그 레벨을 조정합니다.
//
// 설정 파일 로드가 완료된 이후, 최종 로그 레벨을 확정하는 용도로 사용됩니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(logrus.TraceLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithComponent 컴포넌트 이름이 포함된 로그 엔트리를 반환합니다.
//
// 모든 서비스/패키지는 로그 발생 위치를 식별할 수 있도록
// 자신의 컴포넌트 이름(예: "bridge.executor", "api.service")을 지정해야 합니다.
func WithComponent(component string) *logrus.Entry {
	return logrus.WithField(fieldComponent, component)
}

// WithComponentAndFields 컴포넌트 이름과 추가 필드가 포함된 로그 엔트리를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *logrus.Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[fieldComponent] = component

	return logrus.WithFields(merged)
}

// WithFields 추가 필드가 포함된 로그 엔트리를 반환합니다.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// WithError 에러 필드가 포함된 로그 엔트리를 반환합니다.
func WithError(err error) *logrus.Entry {
	return logrus.WithError(err)
}
