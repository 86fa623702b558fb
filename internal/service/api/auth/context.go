package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/setting-server/internal/service/api/model/domain"
)

// contextKeyApplication 인증된 애플리케이션 정보를 요청 컨텍스트에 저장할 때 사용하는 키입니다.
const contextKeyApplication = "darkkaiser/setting-server/api/auth/AuthenticatedApplication"

// SetAuthenticatedApplication 인증된 애플리케이션 정보를 요청 컨텍스트에 저장합니다.
func SetAuthenticatedApplication(c echo.Context, application *domain.Application) {
	c.Set(contextKeyApplication, application)
}

// GetAuthenticatedApplication 요청 컨텍스트에서 인증된 애플리케이션 정보를 조회합니다.
func GetAuthenticatedApplication(c echo.Context) (*domain.Application, error) {
	application, ok := c.Get(contextKeyApplication).(*domain.Application)
	if !ok || application == nil {
		return nil, ErrApplicationNotAuthenticated
	}
	return application, nil
}
