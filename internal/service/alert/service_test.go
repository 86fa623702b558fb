package alert

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/darkkaiser/setting-server/internal/config"
)

// mockBotClient 전송된 메시지를 수집하는 테스트용 봇 클라이언트입니다.
type mockBotClient struct {
	mu       sync.Mutex
	messages []tgbotapi.MessageConfig
}

func (c *mockBotClient) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg, ok := chattable.(tgbotapi.MessageConfig); ok {
		c.messages = append(c.messages, msg)
	}
	return tgbotapi.Message{}, nil
}

func (c *mockBotClient) sentMessages() []tgbotapi.MessageConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), c.messages...)
}

func newTestConfig(enabled bool) *config.AppConfig {
	appConfig := &config.AppConfig{}
	appConfig.Notifier.Telegram.Enabled = enabled
	appConfig.Notifier.Telegram.ChatID = 12345
	return appConfig
}

// startService 알림 서비스를 시작하고 테스트 종료 시 정리합니다.
func startService(t *testing.T, s *Service) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

// TestService_Notify 알림 메시지가 애플리케이션 이름 헤더와 함께 발송되는지 검증합니다.
func TestService_Notify(t *testing.T) {
	client := &mockBotClient{}
	s := newServiceWithClient(newTestConfig(true), client)
	startService(t, s)

	require.NoError(t, s.Notify("테스트 메시지"))

	assert.Eventually(t, func() bool {
		return len(client.sentMessages()) == 1
	}, time.Second, 5*time.Millisecond)

	messages := client.sentMessages()
	require.Len(t, messages, 1)
	assert.Equal(t, int64(12345), messages[0].ChatID)
	assert.Equal(t, "["+config.AppName+"]\n테스트 메시지", messages[0].Text)
}

// TestService_NotifyWithError 오류 알림에 경고 접두어가 붙는지 검증합니다.
func TestService_NotifyWithError(t *testing.T) {
	client := &mockBotClient{}
	s := newServiceWithClient(newTestConfig(true), client)
	startService(t, s)

	require.NoError(t, s.NotifyWithError("오류 메시지"))

	assert.Eventually(t, func() bool {
		return len(client.sentMessages()) == 1
	}, time.Second, 5*time.Millisecond)

	messages := client.sentMessages()
	require.Len(t, messages, 1)
	assert.Equal(t, "["+config.AppName+"]\n⚠️ 오류 메시지", messages[0].Text)
}

// TestService_Notify_Disabled 알림이 비활성화된 서비스는 발송 요청을 에러 없이
// 무시하는지 검증합니다.
func TestService_Notify_Disabled(t *testing.T) {
	s, err := NewService(newTestConfig(false))
	require.NoError(t, err)

	startService(t, s)

	assert.NoError(t, s.Notify("무시되는 메시지"))
	assert.NoError(t, s.NotifyWithError("무시되는 오류 메시지"))
}

// TestService_Notify_NotRunning 시작되지 않은 서비스에 대한 발송 요청이
// 거부되는지 검증합니다.
func TestService_Notify_NotRunning(t *testing.T) {
	s := newServiceWithClient(newTestConfig(true), &mockBotClient{})

	assert.ErrorIs(t, s.Notify("메시지"), ErrServiceNotRunning)
}

// TestService_Notify_QueueFull 대기열 포화 시 발송 요청이 즉시 거부되는지 검증합니다.
func TestService_Notify_QueueFull(t *testing.T) {
	s := newServiceWithClient(newTestConfig(true), &mockBotClient{})

	// 발송 루프를 가동하지 않은 채 대기열만 가득 채운다.
	s.runningMu.Lock()
	s.running = true
	s.runningMu.Unlock()

	for i := 0; i < messageQueueSize; i++ {
		require.NoError(t, s.Notify("메시지"))
	}

	assert.ErrorIs(t, s.Notify("넘치는 메시지"), ErrQueueFull)
}

// TestService_Start_Twice 중복 시작이 에러 없이 무시되는지 검증합니다.
func TestService_Start_Twice(t *testing.T) {
	s := newServiceWithClient(newTestConfig(true), &mockBotClient{})
	startService(t, s)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	assert.NoError(t, s.Start(context.Background(), wg))
	wg.Wait()
}

// TestService_DrainRemainingMessages 종료 시점에 대기열에 남은 메시지가
// 모두 발송되는지 검증합니다.
func TestService_DrainRemainingMessages(t *testing.T) {
	client := &mockBotClient{}
	s := newServiceWithClient(newTestConfig(true), client)

	for i := 0; i < 5; i++ {
		s.messageC <- message{text: "잔여 메시지"}
	}

	s.drainRemainingMessages()

	assert.Len(t, client.sentMessages(), 5, "대기열에 남은 메시지는 종료 전에 발송되어야 합니다")
}

// TestNoopSender 모든 발송 요청이 에러 없이 무시되는지 검증합니다.
func TestNoopSender(t *testing.T) {
	t.Parallel()

	s := NewNoopSender()
	assert.NoError(t, s.Notify("메시지"))
	assert.NoError(t, s.NotifyWithError("오류 메시지"))
}
