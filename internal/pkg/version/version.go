// Package version 애플리케이션의 빌드 및 버저닝 정보를 관리하는 패키지입니다.
//
// 빌드 시점(Build-Time)에 링커 플래그(-ldflags)로 주입된 메타데이터와
// 실행 시점(Run-Time)의 환경 정보(Go 버전, OS, 아키텍처)를 통합하여 제공합니다.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// globalBuildInfo 전역 빌드 정보 (Atomic Value를 사용하여 Thread-Safe 보장)
var globalBuildInfo atomic.Value

// Info 애플리케이션의 빌드 정보를 담고 있습니다.
//
// 주로 /version API 엔드포인트나 기동 로그 출력에 사용됩니다.
type Info struct {
	Version     string `json:"version"`      // 애플리케이션의 버전 (예: v1.0.1-12-gf25b8bf)
	Commit      string `json:"commit"`       // Git 커밋 해시 (예: f25b8bf)
	BuildDate   string `json:"build_date"`   // 빌드 날짜 (ISO 8601 형식 권장)
	BuildNumber string `json:"build_number"` // CI/CD 빌드 번호
	GoVersion   string `json:"go_version"`   // 빌드에 사용된 Go 컴파일러 버전
	OS          string `json:"os"`           // 실행 중인 운영체제
	Arch        string `json:"arch"`         // 실행 중인 시스템 아키텍처
}

// Set 애플리케이션의 빌드 정보를 등록합니다.
//
// main 함수에서 링커 플래그로 주입받은 값을 전달하며,
// 비어 있는 런타임 환경 값은 자동으로 채워집니다.
func Set(bi Info) {
	globalBuildInfo.Store(enrich(bi))
}

// Get 애플리케이션의 빌드 정보를 반환합니다.
func Get() Info {
	bi := globalBuildInfo.Load()
	if bi == nil {
		return enrich(Info{})
	}
	return bi.(Info)
}

// String 빌드 정보를 로그 출력용 한 줄 문자열로 변환합니다.
func (bi Info) String() string {
	var sb strings.Builder

	sb.WriteString(bi.Version)
	if bi.Commit != "" && bi.Commit != unknown {
		sb.WriteString(fmt.Sprintf(" (%s)", bi.Commit))
	}
	if bi.BuildNumber != "" && bi.BuildNumber != "0" {
		sb.WriteString(fmt.Sprintf(" build #%s", bi.BuildNumber))
	}

	return sb.String()
}

// enrich 초기화되지 않은 빌드 정보에 런타임 환경 값(Go 버전, OS, Arch)을 채워 넣습니다.
func enrich(bi Info) Info {
	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}
	if bi.BuildNumber == "" {
		bi.BuildNumber = "0"
	}
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}
	return bi
}
