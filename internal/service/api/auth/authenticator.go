// Package auth API 요청에 대한 애플리케이션 인증을 담당합니다.
package auth

import (
	"crypto/subtle"
	"sync"

	applog "github.com/darkkaiser/setting-server/pkg/log"
	"github.com/darkkaiser/setting-server/pkg/strutil"

	"github.com/darkkaiser/setting-server/internal/config"
	"github.com/darkkaiser/setting-server/internal/service/api/model/domain"
)

// Authenticator 등록된 애플리케이션들의 인증 정보를 관리하고 검증합니다.
type Authenticator struct {
	applicationsMu sync.RWMutex
	applications   map[string]*domain.Application // 애플리케이션 ID => 애플리케이션
}

// NewAuthenticator 환경설정에 등록된 애플리케이션 목록으로 Authenticator를 생성합니다.
func NewAuthenticator(appConfigs []config.ApplicationConfig) *Authenticator {
	applications := make(map[string]*domain.Application, len(appConfigs))
	for _, c := range appConfigs {
		applications[c.ID] = &domain.Application{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			AppKey:      c.AppKey,
		}
	}

	return &Authenticator{
		applications: applications,
	}
}

// Authenticate 애플리케이션 ID와 키를 검증하고, 성공 시 해당 애플리케이션 정보를 반환합니다.
func (a *Authenticator) Authenticate(applicationID, appKey string) (*domain.Application, error) {
	a.applicationsMu.RLock()
	application, exists := a.applications[applicationID]
	a.applicationsMu.RUnlock()

	if !exists {
		applog.WithComponentAndFields("api.auth", applog.Fields{
			"application_id": applicationID,
		}).Warn("등록되지 않은 애플리케이션의 인증 시도가 감지되었습니다")

		return nil, ErrApplicationNotFound
	}

	if subtle.ConstantTimeCompare([]byte(application.AppKey), []byte(appKey)) != 1 {
		applog.WithComponentAndFields("api.auth", applog.Fields{
			"application_id": applicationID,
			"app_key":        strutil.Mask(appKey),
		}).Warn("유효하지 않은 애플리케이션 키로 인증 시도가 감지되었습니다")

		return nil, ErrInvalidAppKey
	}

	return application, nil
}
