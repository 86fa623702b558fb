package cronx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidate Cron 표현식 검증 동작을 확인합니다.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"6필드 표현식", "0 */5 * * * *", false},
		{"매일 특정 시각", "0 30 8 * * *", false},
		{"Descriptor 표현식", "@daily", false},
		{"@every 표현식", "@every 1h30m", false},
		{"5필드 표준 형식은 지원하지 않는다", "*/5 * * * *", true},
		{"빈 문자열", "", true},
		{"잘못된 문자열", "not a cron spec", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
