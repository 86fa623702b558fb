// Package errors 애플리케이션 전용 에러 처리 시스템을 제공합니다.
//
// 이 패키지는 표준 errors 패키지를 확장하여 타입 기반 에러 분류와
// 에러 체이닝을 지원합니다. 모든 에러는 ErrorType으로 분류되며,
// Wrap 함수를 통해 컨텍스트를 누적할 수 있습니다.
//
// 기본 사용법:
//
//	err := errors.New(errors.NotFound, "설정값을 찾을 수 없습니다")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.Internal, "설정 저장소 조회 실패")
//	}
//
//	if errors.Is(err, errors.NotFound) {
//	    // NotFound 타입 에러 처리
//	}
package errors

import (
	"errors"
	"fmt"
)

// AppError 애플리케이션 전용 에러 구조체입니다.
type AppError struct {
	Type    ErrorType // 에러 종류
	Message string    // 사용자에게 보여줄 메시지
	Cause   error     // 원인 에러 (Wrapping)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, msg string) error {
	return &AppError{
		Type:    errType,
		Message: msg,
	}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다.
// err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, msg string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:    errType,
		Message: msg,
		Cause:   err,
	}
}

// Is 에러 체인에 지정된 타입의 AppError가 포함되어 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Type == errType {
				return true
			}
			err = appErr.Cause
			continue
		}
		return false
	}
	return false
}

// As 표준 errors.As 함수를 래핑합니다.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetType 에러 타입을 반환합니다. AppError가 아니거나 nil이면 Unknown을 반환합니다.
func GetType(err error) ErrorType {
	if err == nil {
		return Unknown
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return Unknown
}

// Cause 원인 에러를 반환합니다.
func Cause(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Cause
	}
	return nil
}

// RootCause 에러 체인의 최상위 원인 에러를 반환합니다.
// 중첩된 에러를 재귀적으로 unwrap하여 가장 근본적인 원인을 찾습니다.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
