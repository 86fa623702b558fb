// Package system 시스템 상태 조회 API의 응답 모델을 정의합니다.
package system

// HealthResponse 서버 헬스체크 응답입니다.
type HealthResponse struct {
	// Status 서버의 전체 상태 (healthy / unhealthy)
	Status string `json:"status" example:"healthy"`

	// Uptime 서버 기동 후 경과 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`

	// Dependencies 외부 의존성들의 상태
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus 외부 의존성의 상태 정보입니다.
type DependencyStatus struct {
	// Status 의존성의 상태 (healthy / unhealthy)
	Status string `json:"status" example:"healthy"`

	// Message 상태에 대한 부가 설명
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}

// VersionResponse 서버 버전 정보 응답입니다.
type VersionResponse struct {
	// Version 애플리케이션의 버전
	Version string `json:"version" example:"v1.0.0"`

	// Commit Git 커밋 해시
	Commit string `json:"commit" example:"f25b8bf"`

	// BuildDate 빌드 날짜
	BuildDate string `json:"build_date" example:"2025-01-01T00:00:00Z"`

	// BuildNumber CI/CD 빌드 번호
	BuildNumber string `json:"build_number" example:"42"`

	// GoVersion 빌드에 사용된 Go 컴파일러 버전
	GoVersion string `json:"go_version" example:"go1.24.0"`

	// OS 실행 중인 운영체제
	OS string `json:"os" example:"linux"`

	// Arch 실행 중인 시스템 아키텍처
	Arch string `json:"arch" example:"amd64"`
}
