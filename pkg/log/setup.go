package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// defaultLogDirectoryName 로그 파일이 저장될 기본 디렉토리 이름
	defaultLogDirectoryName = "logs"

	// fileExt 생성되는 로그 파일의 확장자
	fileExt = "log"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (단위: MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
)

var (
	// setupOnce Setup() 함수의 중복 호출을 방지하기 위한 동기화 객체입니다.
	// 프로세스 생명주기 동안 Setup()이 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// globalCloser 전역 로깅 리소스의 해제 객체(Closer)를 보관합니다.
	globalCloser io.Closer

	// globalSetupErr 로깅 시스템 초기화 단계에서 발생한 에러를 보관합니다.
	// 초기화에 실패한 경우, 이후 Setup()이 재호출되더라도 재시도하지 않고 최초의 에러를 그대로 반환합니다.
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화하고 설정된 옵션에 따라 파일 출력을 구성합니다.
//
// 주의:
//   - 애플리케이션 시작 시점(main 함수 도입부)에 호출하는 것을 권장합니다.
//   - 반환된 Closer는 반드시 defer를 통해 리소스가 해제되도록 보장해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

// setupInternal 실제 로깅 시스템 초기화 로직을 수행합니다.
// 이 함수는 Setup()에서 sync.Once를 통해 단 한 번만 호출됩니다.
func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	logrus.SetLevel(opts.Level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			// 긴 전체 경로 대신 "파일명:라인번호" 형식으로 축약하여 가독성을 높입니다.
			return "", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		},
	})

	var writers []io.Writer
	result := &closer{}

	if opts.EnableFileLog {
		dir := opts.Dir
		if dir == "" {
			dir = defaultLogDirectoryName
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패(%s): %w", dir, err)
		}

		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = defaultMaxBackups
		}

		// 로그 파일은 lumberjack을 통해 크기/보관일 기준으로 자동 로테이션됩니다.
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(dir, fmt.Sprintf("%s.%s", sanitizeFileName(opts.Name), fileExt)),
			MaxSize:    maxSize,
			MaxAge:     opts.MaxAgeDays,
			MaxBackups: maxBackups,
			LocalTime:  true,
			Compress:   false,
		}

		writers = append(writers, fileWriter)
		result.closers = append(result.closers, fileWriter)
	}

	if opts.EnableConsoleLog {
		writers = append(writers, os.Stdout)
	}

	switch len(writers) {
	case 0:
		// 출력 대상이 없으면 로그를 버립니다. (테스트 환경 등)
		logrus.SetOutput(io.Discard)
	case 1:
		logrus.SetOutput(writers[0])
	default:
		logrus.SetOutput(io.MultiWriter(writers...))
	}

	if len(result.closers) == 0 {
		return nopCloser{}, nil
	}

	return result, nil
}

// sanitizeFileName 애플리케이션 식별자에서 파일명으로 사용할 수 없는 문자를 제거합니다.
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		" ", "_",
	)
	return replacer.Replace(name)
}
