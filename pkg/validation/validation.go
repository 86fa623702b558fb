// Package validation 설정값 검증에 사용되는 범용 유효성 검사 함수들을 제공합니다.
package validation

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// hostnameRegex RFC 1123 호스트명 레이블 규칙입니다.
var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidatePort 포트 번호가 유효한 범위(1-65535) 내에 있는지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname 호스트명이 RFC 1123 표준을 준수하는지, 또는 IP 주소/로컬호스트인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" {
		return nil
	}

	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if len(host) == 0 || len(host) > 253 {
		return fmt.Errorf("호스트명 길이가 유효하지 않습니다 (host=%q)", host)
	}

	for _, label := range strings.Split(host, ".") {
		if !hostnameRegex.MatchString(label) {
			return fmt.Errorf("호스트명이 RFC 1123 표준을 준수하지 않습니다 (host=%q)", host)
		}
	}

	return nil
}
