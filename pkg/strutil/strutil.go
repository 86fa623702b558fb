// Package strutil 문자열 처리 유틸리티 함수들을 제공합니다.
package strutil

// Mask 민감한 문자열을 로그에 안전하게 남길 수 있도록 마스킹합니다.
//
// 3자 이하는 전체를, 12자 이하는 앞 4자를 제외한 나머지를,
// 그 이상은 앞뒤 4자를 제외한 나머지를 "***"으로 대체합니다.
func Mask(s string) string {
	switch {
	case len(s) <= 3:
		return "***"
	case len(s) <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[len(s)-4:]
	}
}
