package auth

import (
	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
)

var (
	// ErrApplicationNotFound 등록되지 않은 애플리케이션 ID로 인증을 시도했을 때 반환됩니다.
	ErrApplicationNotFound = apperrors.New(apperrors.Unauthorized, "등록되지 않은 애플리케이션입니다")

	// ErrInvalidAppKey 애플리케이션 키가 일치하지 않을 때 반환됩니다.
	ErrInvalidAppKey = apperrors.New(apperrors.Unauthorized, "애플리케이션 키가 유효하지 않습니다")

	// ErrApplicationNotAuthenticated 인증된 애플리케이션 정보가 요청 컨텍스트에 없을 때 반환됩니다.
	ErrApplicationNotAuthenticated = apperrors.New(apperrors.Unauthorized, "인증된 애플리케이션 정보를 찾을 수 없습니다")
)
