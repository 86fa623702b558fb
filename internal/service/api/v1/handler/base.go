// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// HTTP 요청을 받아 검증하고, 설정 파사드(settings.Facade)를 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"github.com/labstack/echo/v4"

	applog "github.com/darkkaiser/setting-server/pkg/log"

	"github.com/darkkaiser/setting-server/internal/service/api/constants"
	"github.com/darkkaiser/setting-server/internal/service/settings"
)

// Handler v1 API 요청을 처리하고 설정 파사드와 연결하는 핸들러입니다.
type Handler struct {
	// facade 디바이스 설정의 조회/변경을 담당하는 파사드
	facade *settings.Facade
}

// NewHandler Handler 인스턴스를 생성합니다. facade가 nil이면 panic이 발생합니다.
func NewHandler(facade *settings.Facade) *Handler {
	if facade == nil {
		panic("Facade 객체는 필수입니다")
	}

	return &Handler{
		facade: facade,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
		"method":   c.Request().Method,
	})
}
