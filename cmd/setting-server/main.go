package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/darkkaiser/setting-server/internal/config"
	"github.com/darkkaiser/setting-server/internal/pkg/version"
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/platform/memdevice"
	"github.com/darkkaiser/setting-server/internal/service"
	"github.com/darkkaiser/setting-server/internal/service/alert"
	"github.com/darkkaiser/setting-server/internal/service/api"
	"github.com/darkkaiser/setting-server/internal/service/bridge"
	"github.com/darkkaiser/setting-server/internal/service/bridge/idgen"
	"github.com/darkkaiser/setting-server/internal/service/scheduler"
	"github.com/darkkaiser/setting-server/internal/service/settings"
	applog "github.com/darkkaiser/setting-server/pkg/log"
)

// @title Setting Server API
// @version 1.0.0
// @description 디바이스 설정 조회/변경을 위한 서버의 REST API입니다.
// @description
// @description 이 API를 사용하면 외부 애플리케이션에서 화면, 소리, 네트워크 등
// @description 디바이스 설정을 원격으로 조회하고 변경할 수 있습니다.
// @description
// @description ## 주요 기능
// @description - 화면 꺼짐 대기 시간, 화면 밝기, 화면 켜짐 상태 관리
// @description - 벨소리/미디어 볼륨 및 벨소리 모드 관리
// @description - 비행기 모드, 시스템 시각, 가동 시간 조회/변경
// @description - 애플리케이션별 인증 및 권한 관리
// @description
// @description ## 인증 방법
// @description API 사용을 위해서는 사전에 등록된 애플리케이션 ID와 App Key가 필요합니다.
// @description 설정 파일(setting-server.json)의 setting_api.applications에 애플리케이션을 등록한 후 사용하세요.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description Application Key for authentication

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version     = "dev"     // Git 커밋 해시
	BuildDate   = "unknown" // 빌드 날짜
	BuildNumber = "0"       // 빌드 번호
)

const (
	banner = `
  ____         _   _    _                  ____
 / ___|   ___ | |_| |_ (_) _ __    __ _   / ___|   ___  _ __ __   __  ___  _ __
 \___ \  / _ \| __| __|| || '_ \  / _' |  \___ \  / _ \| '__|\ \ / / / _ \| '__|
  ___) ||  __/| |_| |_ | || | | || (_| |   ___) ||  __/| |    \ V / |  __/| |
 |____/  \___| \__|\__||_||_| |_| \__, |  |____/  \___||_|     \_/   \___||_|
                                  |___/                      %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, Version)

	// 빌드 정보 설정 (전역 싱글톤 등록)
	buildInfo := version.Info{
		Version:     Version,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
	version.Set(buildInfo)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 위반 사항 경고 출력
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 디바이스 및 브리지를 생성하고 초기화한다.
	device := memdevice.New(deviceOptions(appConfig))
	executor := bridge.NewExecutor(&idgen.Generator{}, device)
	device.SetHostStartHandler(executor)

	// 알림 서비스를 생성한다.
	alertService, err := alert.NewService(appConfig)
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Fatal("알림 서비스 초기화 실패로 프로그램을 종료합니다")
	}

	// 설정 파사드를 생성한다.
	facade := settings.NewFacade(settings.Deps{
		Store:        device,
		Audio:        device,
		Connectivity: device,
		Power:        device,
		Clock:        device,
	}, executor, appConfig.Bridge.SubmitTimeoutDuration(), alertService)

	// 서비스를 생성하고 초기화한다.
	schedulerService := scheduler.NewService(appConfig.Profiles, facade, alertService)
	apiService := api.NewService(appConfig, facade, device, alertService, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{device, alertService, schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}

// loadConfig 환경설정 파일을 로드합니다.
// 실행 인자로 설정 파일 경로가 전달되면 해당 파일을, 그렇지 않으면 기본 파일을 사용합니다.
func loadConfig() (*config.AppConfig, error) {
	if len(os.Args) > 1 {
		return config.LoadWithFile(os.Args[1])
	}
	return config.Load()
}

// deviceOptions 환경설정의 디바이스 초기 상태를 memdevice 옵션으로 변환합니다.
func deviceOptions(appConfig *config.AppConfig) memdevice.Options {
	opts := memdevice.DefaultOptions()

	opts.InitialSettings = map[string]int{
		settings.KeyScreenBrightness: appConfig.Device.ScreenBrightness,
		settings.KeyScreenOffTimeout: appConfig.Device.ScreenOffTimeout * 1000, // 초 => 밀리초
	}
	opts.RingerMode = platform.RingerMode(appConfig.Device.RingerMode)
	opts.RingerVolume = appConfig.Device.RingerVolume
	opts.MediaVolume = appConfig.Device.MediaVolume
	opts.AirplaneMode = appConfig.Device.AirplaneMode
	opts.ScreenOn = appConfig.Device.ScreenOn
	opts.HostCreateDelay = appConfig.Bridge.HostCreateDelayDuration()

	return opts
}
