// Package scheduler 설정 프로필을 Cron 스케줄에 맞춰 자동으로 적용하는 서비스를 제공합니다.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/setting-server/internal/config"
	"github.com/darkkaiser/setting-server/internal/platform"
	"github.com/darkkaiser/setting-server/internal/service/contract"
	"github.com/darkkaiser/setting-server/pkg/cronx"
	applog "github.com/darkkaiser/setting-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// profileApplyTimeout 프로필 적용 시 최대 대기 시간 (블로킹 방지)
const profileApplyTimeout = 60 * time.Second

// SettingsApplier 프로필 적용에 필요한 설정 변경 연산들입니다.
// settings.Facade가 이 인터페이스를 충족합니다.
type SettingsApplier interface {
	SetScreenBrightness(ctx context.Context, value int) (int, error)
	SetScreenTimeout(seconds int) (int, error)
	SetRingerMode(mode platform.RingerMode) error
	SetRingerVolume(volume int) error
	SetMediaVolume(volume int) error
	ToggleAirplaneMode(enabled *bool) (bool, error)
}

// Scheduler 애플리케이션 설정 파일에 정의된 설정 프로필들을 Cron 스케줄에 맞춰 자동으로 적용하는 서비스입니다.
type Scheduler struct {
	profileConfigs []config.ProfileConfig

	cron *cron.Cron

	applier SettingsApplier

	alerter contract.AlertSender

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(profileConfigs []config.ProfileConfig, applier SettingsApplier, alerter contract.AlertSender) *Scheduler {
	if applier == nil {
		panic("SettingsApplier는 필수입니다")
	}
	if alerter == nil {
		panic("AlertSender는 필수입니다")
	}

	return &Scheduler{
		profileConfigs: profileConfigs,

		applier: applier,

		alerter: alerter,
	}
}

// Start 스케줄러를 시작하고 설정 파일에 정의된 프로필들을 Cron 엔진에 등록합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Scheduler 서비스 시작중...")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 시작됨!!!")
		return nil
	}

	// Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 프로필 적용에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 적용이 끝나지 않았으면 다음 적용을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	s.registerProfiles()

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules":   len(s.cron.Entries()),
		"total_defined_profiles": len(s.profileConfigs),
	}).Info("Scheduler 서비스 시작됨")

	// 종료 신호 대기 (고루틴)
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 안전하게 중지합니다.
// 현재 적용 중인 프로필이 있으면 완료될 때까지 대기합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("Scheduler 서비스 중지중...")

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 중지됨")
}

func (s *Scheduler) registerProfiles() {
	for _, p := range s.profileConfigs {
		if !p.Scheduler.Runnable {
			continue
		}

		profile := p

		_, err := s.cron.AddFunc(profile.Scheduler.TimeSpec, func() {
			// 프로필 적용의 생명주기를 서비스 종료 시그널과 분리합니다. Graceful Shutdown 시
			// cron.Stop()이 실행 중인 적용의 완료를 대기하므로, 도중 취소로 인한
			// 어중간한 상태 변경을 방지합니다.
			ctx, cancel := context.WithTimeout(context.Background(), profileApplyTimeout)
			defer cancel()

			if err := s.applyProfile(ctx, profile); err != nil {
				s.logAndNotifyError(profile, "프로필 적용 실패: 설정 변경 중 오류가 발생했습니다", err)
				return
			}

			applog.WithComponentAndFields(component, applog.Fields{
				"profile_id": profile.ID,
			}).Info("설정 프로필이 적용되었습니다.")
		})

		if err != nil {
			// 스케줄 파싱 실패 시 해당 프로필만 건너뛰고 계속 진행
			s.logAndNotifyError(profile, fmt.Sprintf("스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec: %s)", profile.Scheduler.TimeSpec), err)
			continue
		}
	}
}

// applyProfile 프로필에 정의된 설정값들을 순차적으로 적용합니다.
// 첫 번째 실패 시점에 중단하며, 이미 적용된 항목은 되돌리지 않습니다.
func (s *Scheduler) applyProfile(ctx context.Context, profile config.ProfileConfig) error {
	settings := profile.Settings

	if settings.ScreenOffTimeout != nil {
		if _, err := s.applier.SetScreenTimeout(*settings.ScreenOffTimeout); err != nil {
			return fmt.Errorf("화면 꺼짐 대기 시간 적용 실패: %w", err)
		}
	}
	if settings.RingerMode != nil {
		if err := s.applier.SetRingerMode(platform.RingerMode(*settings.RingerMode)); err != nil {
			return fmt.Errorf("벨소리 모드 적용 실패: %w", err)
		}
	}
	if settings.RingerVolume != nil {
		if err := s.applier.SetRingerVolume(*settings.RingerVolume); err != nil {
			return fmt.Errorf("벨소리 볼륨 적용 실패: %w", err)
		}
	}
	if settings.MediaVolume != nil {
		if err := s.applier.SetMediaVolume(*settings.MediaVolume); err != nil {
			return fmt.Errorf("미디어 볼륨 적용 실패: %w", err)
		}
	}
	if settings.AirplaneMode != nil {
		if _, err := s.applier.ToggleAirplaneMode(settings.AirplaneMode); err != nil {
			return fmt.Errorf("비행기 모드 적용 실패: %w", err)
		}
	}
	if settings.ScreenBrightness != nil {
		if _, err := s.applier.SetScreenBrightness(ctx, *settings.ScreenBrightness); err != nil {
			return fmt.Errorf("화면 밝기 적용 실패: %w", err)
		}
	}

	return nil
}

// logAndNotifyError 프로필 적용 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Scheduler) logAndNotifyError(profile config.ProfileConfig, message string, err error) {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"profile_id": profile.ID,
		"error":      err,
	}).Error(message)

	if alertErr := s.alerter.NotifyWithError(fmt.Sprintf("설정 프로필('%s') 처리 중 오류가 발생했습니다.\n%s", profile.ID, message)); alertErr != nil {
		applog.WithComponent(component).WithError(alertErr).Warn("운영 알림 발송이 실패하였습니다.")
	}
}
