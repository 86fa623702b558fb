package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidatePort 포트 번호 범위 검증을 확인합니다.
func TestValidatePort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"최소 유효 포트", 1, false},
		{"일반적인 서비스 포트", 8080, false},
		{"최대 유효 포트", 65535, false},
		{"0은 유효하지 않다", 0, true},
		{"음수 포트", -1, true},
		{"범위 초과 포트", 65536, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePort(tt.port)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateHostname 호스트명 형식 검증을 확인합니다.
func TestValidateHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		host    string
		wantErr bool
	}{
		{"로컬호스트", "localhost", false},
		{"IPv4 주소", "192.168.0.10", false},
		{"IPv6 주소", "::1", false},
		{"일반 도메인", "example.com", false},
		{"하이픈 포함 도메인", "my-server.example.com", false},
		{"빈 문자열", "", true},
		{"하이픈으로 시작하는 레이블", "-bad.example.com", true},
		{"언더스코어 포함", "bad_host.example.com", true},
		{"빈 레이블", "example..com", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHostname(tt.host)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
