package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"
	"github.com/darkkaiser/setting-server/pkg/cronx"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "setting-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// DefaultSubmitTimeout 브리지 작업 제출 시 최대 대기 시간 기본값
	DefaultSubmitTimeout = "30s"
)

// defaultConfig 설정 파일이 덮어쓰기 전에 적용되는 애플리케이션 기본값입니다.
func defaultConfig() *AppConfig {
	return &AppConfig{
		Device: DeviceConfig{
			ScreenBrightness: 102,
			ScreenOffTimeout: 60,
			RingerMode:       2,
			RingerVolume:     5,
			MediaVolume:      8,
			AirplaneMode:     false,
			ScreenOn:         true,
		},
		Bridge: BridgeConfig{
			SubmitTimeout:   DefaultSubmitTimeout,
			HostCreateDelay: "0s",
		},
		SettingAPI: SettingAPIConfig{
			WS: WSConfig{
				ListenPort: 8080,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
	}
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	v := newValidator()

	// Device 유효성 검사
	if err := checkStruct(v, c.Device, "Device"); err != nil {
		return err
	}

	// Bridge 유효성 검사
	if err := c.Bridge.validate(); err != nil {
		return err
	}

	// Profiles 유효성 검사
	if err := checkUniqueField(v, c.Profiles, "ID", "Profile"); err != nil {
		return err
	}
	for _, p := range c.Profiles {
		if err := checkStruct(v, p, fmt.Sprintf("Profile['%s']", p.ID)); err != nil {
			return err
		}

		if p.Settings.Empty() {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Profile['%s']에 적용할 설정값이 하나도 정의되지 않았습니다", p.ID))
		}

		// Cron 표현식 검증 (Scheduler가 활성화된 경우)
		if p.Scheduler.Runnable {
			if err := cronx.Validate(p.Scheduler.TimeSpec); err != nil {
				return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Profile['%s']의 스케줄러(time_spec) 설정이 유효하지 않습니다", p.ID))
			}
		}
	}

	// Notifier 유효성 검사
	if err := checkStruct(v, c.Notifier.Telegram, "Telegram Notifier"); err != nil {
		return err
	}

	// SettingAPI 유효성 검사
	if err := c.SettingAPI.validate(v); err != nil {
		return err
	}

	return nil
}

func (c *BridgeConfig) validate() error {
	if d, err := time.ParseDuration(c.SubmitTimeout); err != nil || d <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("브리지 작업 제출 대기 시간(submit_timeout) 설정이 올바르지 않습니다: '%s' (예: 30s, 500ms)", c.SubmitTimeout))
	}
	if d, err := time.ParseDuration(c.HostCreateDelay); err != nil || d < 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("디스플레이 호스트 생성 지연 시간(host_create_delay) 설정이 올바르지 않습니다: '%s' (예: 0s, 100ms)", c.HostCreateDelay))
	}
	return nil
}

func (c *SettingAPIConfig) validate(v *validator.Validate) error {
	// WS 유효성 검사
	if err := checkStruct(v, c.WS, "웹 서버"); err != nil {
		return err
	}

	// CORS 유효성 검사
	if err := c.CORS.validate(v); err != nil {
		return err
	}

	// Applications 유효성 검사
	if err := checkUniqueField(v, c.Applications, "ID", "Application"); err != nil {
		return err
	}
	for _, app := range c.Applications {
		if err := checkStruct(v, app, fmt.Sprintf("Application['%s']", app.ID)); err != nil {
			return err
		}

		if strings.TrimSpace(app.AppKey) == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Application['%s']의 API 키(app_key)가 설정되지 않았습니다", app.ID))
		}
	}

	return nil
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	// 와일드카드(*)는 단독으로만 사용할 수 있습니다.
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(v, c, "CORS")
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: Well-known Port 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.SettingAPI.WS.VerifyRecommendations()
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(defaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: SETTING_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: SETTING_BRIDGE__SUBMIT_TIMEOUT -> bridge.submit_timeout
	if err := k.Load(env.Provider("SETTING_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SETTING_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
