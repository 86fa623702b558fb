// Package validator go-playground/validator 기반의 구조체 유효성 검증 유틸리티입니다.
//
// 전역 Validate 인스턴스를 공유하여 구조체 태그 캐시를 재사용하며,
// 검증 실패 시 사용자에게 노출 가능한 한국어 메시지로 변환하는 기능을 제공합니다.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 전역 검증 인스턴스입니다. (내부적으로 구조체 캐시를 유지하므로 재사용이 권장됩니다)
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct 구조체의 validate 태그를 기반으로 유효성을 검증합니다.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Var 단일 값의 유효성을 지정된 태그 규칙으로 검증합니다.
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

// FormatValidationError 검증 에러를 사용자 친화적인 메시지로 변환합니다.
//
// validator.ValidationErrors가 아닌 일반 에러는 기본 메시지로 대체하여,
// 내부 구현 상세가 외부로 노출되지 않도록 합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "요청 데이터가 올바르지 않습니다"
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("필수 항목이 누락되었습니다: %s", fieldErr.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s 값이 너무 작습니다 (최소: %s)", fieldErr.Field(), fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s 값이 너무 큽니다 (최대: %s)", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s 값이 올바르지 않습니다", fieldErr.Field()))
		}
	}

	return strings.Join(messages, ", ")
}
