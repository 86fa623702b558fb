// Package alert 운영 알림 발송 서비스를 제공합니다.
//
// 제한 시간 초과, 호스트 생성 실패 등 관리자의 주의가 필요한 상황을
// 텔레그램으로 전달합니다. 텔레그램 설정이 비활성화되어 있으면 모든 발송
// 요청은 무시되므로, 클라이언트는 활성화 여부를 신경 쓸 필요가 없습니다.
package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/setting-server/internal/config"
	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	applog "github.com/darkkaiser/setting-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// component 알림 서비스 로깅용 컴포넌트 이름
const component = "alert.service"

const (
	// messageQueueSize 발송 대기열의 최대 크기입니다.
	// 대기열이 가득 차면 새로운 발송 요청은 유실 방지 재시도 없이 즉시 거부됩니다.
	messageQueueSize = 100

	// drainTimeout 서비스 종료 시 대기열에 남은 메시지를 처리하기 위해 대기하는 최대 시간입니다.
	drainTimeout = 10 * time.Second
)

var (
	// ErrQueueFull 발송 대기열이 가득 차 있을 때 반환되는 에러입니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 발송 대기열이 포화 상태에 도달하여 일시적으로 요청을 접수할 수 없습니다")

	// ErrServiceNotRunning 알림 서비스가 실행 중이 아닐 때 반환되는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Internal, "Alert 서비스가 현재 실행 중이지 않아 요청을 수행할 수 없습니다")
)

// botClient 텔레그램 봇 API와의 통신을 추상화한 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// message 발송 대기열에 적재되는 알림 메시지입니다.
type message struct {
	text          string
	errorOccurred bool
}

// Service 텔레그램 기반의 운영 알림 발송 서비스입니다.
// contract.AlertSender를 구현합니다.
type Service struct {
	appConfig *config.AppConfig

	enabled bool
	bot     botClient
	chatID  int64

	messageC chan message

	// limiter 텔레그램 API 호출 속도를 제한합니다.
	limiter *rate.Limiter

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 알림 서비스 객체를 생성하여 반환합니다.
// 텔레그램 설정이 비활성화되어 있으면 모든 발송 요청을 무시하는 객체가 반환됩니다.
func NewService(appConfig *config.AppConfig) (*Service, error) {
	s := &Service{
		appConfig: appConfig,

		enabled: appConfig.Notifier.Telegram.Enabled,
		chatID:  appConfig.Notifier.Telegram.ChatID,

		messageC: make(chan message, messageQueueSize),

		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}

	if !s.enabled {
		return s, nil
	}

	bot, err := tgbotapi.NewBotAPI(appConfig.Notifier.Telegram.BotToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "텔레그램 봇 초기화에 실패했습니다")
	}
	s.bot = bot

	return s, nil
}

// newServiceWithClient 테스트에서 봇 클라이언트를 주입하기 위한 생성자입니다.
func newServiceWithClient(appConfig *config.AppConfig, client botClient) *Service {
	return &Service{
		appConfig: appConfig,

		enabled: true,
		bot:     client,
		chatID:  appConfig.Notifier.Telegram.ChatID,

		messageC: make(chan message, messageQueueSize),

		limiter: rate.NewLimiter(rate.Every(time.Millisecond), 1),
	}
}

// Start 알림 서비스를 시작하여 발송 루프를 가동합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Alert 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Alert 서비스가 이미 시작됨!!!")
		return nil
	}

	if !s.enabled {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Info("텔레그램 알림이 비활성화되어 있어 발송 루프를 가동하지 않습니다.")
		return nil
	}

	go s.run(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponent(component).Info("Alert 서비스 시작됨")

	return nil
}

// run 발송 대기열의 메시지를 순차적으로 텔레그램에 전송하는 작업 루프입니다.
func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case msg := <-s.messageC:
			s.send(serviceStopCtx, msg)

		case <-serviceStopCtx.Done():
			applog.WithComponent(component).Info("Alert 서비스 중지중...")

			s.runningMu.Lock()
			s.running = false
			s.runningMu.Unlock()

			s.drainRemainingMessages()

			applog.WithComponent(component).Info("Alert 서비스 중지됨")

			return
		}
	}
}

// drainRemainingMessages 종료 시그널 수신 후 대기열에 남아있는 메시지를 최대한 발송합니다.
// drainTimeout이 경과하면 남은 메시지는 유실됩니다.
func (s *Service) drainRemainingMessages() {
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case msg := <-s.messageC:
			s.send(drainCtx, msg)
		case <-drainCtx.Done():
			return
		default:
			return
		}
	}
}

func (s *Service) send(ctx context.Context, msg message) {
	if err := s.limiter.Wait(ctx); err != nil {
		return
	}

	text := msg.text
	if msg.errorOccurred {
		text = "⚠️ " + text
	}

	if _, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, fmt.Sprintf("[%s]\n%s", config.AppName, text))); err != nil {
		applog.WithComponent(component).WithError(err).Error("텔레그램 알림 메시지 발송이 실패하였습니다.")
	}
}

//
// contract.AlertSender
//

// Notify 알림 메시지를 발송 대기열에 등록합니다.
// 텔레그램 알림이 비활성화되어 있으면 아무것도 하지 않습니다.
func (s *Service) Notify(text string) error {
	return s.enqueue(message{text: text})
}

// NotifyWithError "오류" 성격의 알림 메시지를 발송 대기열에 등록합니다.
func (s *Service) NotifyWithError(text string) error {
	return s.enqueue(message{text: text, errorOccurred: true})
}

func (s *Service) enqueue(msg message) error {
	if !s.enabled {
		return nil
	}

	s.runningMu.Lock()
	running := s.running
	s.runningMu.Unlock()

	if !running {
		return ErrServiceNotRunning
	}

	select {
	case s.messageC <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}
