// Package api 디바이스 설정 조회/변경을 위한 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	_ "github.com/darkkaiser/setting-server/docs"
	"github.com/darkkaiser/setting-server/internal/config"
	"github.com/darkkaiser/setting-server/internal/pkg/version"
	applog "github.com/darkkaiser/setting-server/pkg/log"

	apiauth "github.com/darkkaiser/setting-server/internal/service/api/auth"
	"github.com/darkkaiser/setting-server/internal/service/api/constants"
	"github.com/darkkaiser/setting-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/setting-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/setting-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/setting-server/internal/service/contract"
	"github.com/darkkaiser/setting-server/internal/service/settings"
)

// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
const shutdownTimeout = 5 * time.Second

// Service Setting API 서버의 생명주기를 관리하는 서비스입니다.
//
// Echo 기반 HTTP/HTTPS 서버의 시작과 종료, 미들웨어 체인 설정,
// 애플리케이션 인증, 라우팅, Swagger UI 제공, Graceful Shutdown을 담당합니다.
// 서비스는 고루틴으로 실행되며, context를 통해 종료 신호를 받습니다.
type Service struct {
	appConfig *config.AppConfig

	facade *settings.Facade

	device system.DeviceHealthChecker

	alerter contract.AlertSender

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다. 필수 의존성이 nil이면 panic이 발생합니다.
func NewService(appConfig *config.AppConfig, facade *settings.Facade, device system.DeviceHealthChecker, alerter contract.AlertSender, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig 객체는 필수입니다")
	}
	if facade == nil {
		panic("Facade 객체는 필수입니다")
	}
	if device == nil {
		panic("DeviceHealthChecker 객체는 필수입니다")
	}
	if alerter == nil {
		panic("AlertSender 객체는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		facade: facade,

		device: device,

		alerter: alerter,

		buildInfo: buildInfo,

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Start API 서비스를 시작합니다.
//
// 서비스는 별도의 고루틴에서 실행되며, Echo 서버 설정, HTTP/HTTPS 서버 시작,
// Shutdown 신호 대기, Graceful Shutdown 처리를 순차적으로 수행합니다.
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn("API 서비스가 이미 시작됨!!!")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info("API 서비스 시작됨")

	return nil
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
// 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	// 서버 설정
	e := s.setupServer()

	// HTTP 서버 시작
	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	// Shutdown 대기
	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 모든 설정을 완료합니다.
func (s *Service) setupServer() *echo.Echo {
	// 1. Authenticator 생성
	authenticator := apiauth.NewAuthenticator(s.appConfig.SettingAPI.Applications)

	// 2. Handler 생성
	systemHandler := system.NewHandler(s.device, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.facade)

	// 3. Echo 서버 생성 (미들웨어 체인 포함)
	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.SettingAPI.CORS.AllowOrigins,
	})

	// 4. 라우트 등록
	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, authenticator)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다.
//
// 설정에 따라 TLS 활성화 여부를 결정하며, 서버가 종료되면 done 채널을 닫아
// 대기 중인 고루틴에 신호를 보냅니다. 이 함수는 서버가 종료될 때까지 블로킹됩니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.SettingAPI.WS.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug("HTTP 서버 시작중...")

	var err error
	if s.appConfig.SettingAPI.WS.TLSServer {
		err = e.StartTLS(
			fmt.Sprintf(":%d", port),
			s.appConfig.SettingAPI.WS.TLSCertFile,
			s.appConfig.SettingAPI.WS.TLSKeyFile,
		)
	} else {
		err = e.Start(fmt.Sprintf(":%d", port))
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 실행 중 발생한 에러를 처리합니다.
//
//   - nil: 처리하지 않음 (정상 종료)
//   - http.ErrServerClosed: Info 레벨 로깅 (Graceful Shutdown)
//   - 그 외: Error 레벨 로깅 + 알림 전송 (예상치 못한 에러)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info("HTTP 서버 중지됨")
		return
	}

	message := "HTTP 서버 실행이 실패하였습니다"
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.SettingAPI.WS.ListenPort,
		"error": err,
	}).Error(message)

	_ = s.alerter.NotifyWithError(fmt.Sprintf("%s\r\n\r\n%s", message, err))
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
// 이 함수는 서비스가 완전히 종료될 때까지 블로킹됩니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		// 정상적인 종료 신호 수신
		applog.WithComponent(constants.ComponentService).Info("API 서비스 중지중...")
	case <-httpServerDone:
		// HTTP 서버가 예기치 않게 종료됨 (포트 바인딩 실패 등)
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error("HTTP 서버가 예기치 않게 종료되었습니다")

		s.cleanup()

		return
	}

	// Graceful Shutdown 시작
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error("HTTP 서버 Shutdown 처리가 실패하였습니다")
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 중지됨")
}
