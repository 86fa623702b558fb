// Package idgen 작업 인스턴스 ID 생성기를 제공합니다.
package idgen

import (
	"sync/atomic"
	"time"

	"github.com/darkkaiser/setting-server/internal/service/contract"
)

// base62Chars Base62 인코딩 문자셋입니다.
// 0-9, A-Z, a-z 순서는 ASCII 코드 순서와 일치하므로, 생성된 ID를 문자열로
// 비교하면 사전순 정렬이 시간순 정렬과 대략 일치합니다.
const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base62Len = int64(len(base62Chars))

// seqDigits 시퀀스 부분의 고정 자릿수입니다.
// 고정 길이로 패딩하지 않으면 자릿수 차이로 문자열 정렬 순서가 깨집니다.
// (예: "1" > "10" 이지만 "000001" < "000010")
const seqDigits = 6

// Generator 작업 인스턴스의 고유 식별자를 생성합니다.
//
// 나노초 타임스탬프를 Base62로 인코딩한 값 뒤에 원자적 카운터의 시퀀스를
// 고정 길이로 덧붙여, 동일 나노초 내에서도 충돌 없이 시간순에 가까운
// ID를 만들어냅니다.
type Generator struct {
	// counter 동일 나노초 내 생성 순번입니다. 오버플로우되어 0으로 돌아가더라도
	// 타임스탬프가 함께 변하므로 실질적인 충돌 위험은 없습니다.
	counter uint32
}

// New 새로운 TaskInstanceID를 생성합니다.
//
// ID 구조: [타임스탬프(Base62)][시퀀스(Base62, 6자리 고정)]
// 예: "2Xk9pL3m000001"
func (g *Generator) New() contract.TaskInstanceID {
	now := time.Now().UnixNano()
	seq := atomic.AddUint32(&g.counter, 1)

	// int64 최대값의 Base62 표현은 11자리 이내이므로 시퀀스를 포함해도 18바이트면 충분합니다.
	b := make([]byte, 0, 18)
	b = appendBase62(b, now)
	b = appendBase62Padded(b, int64(seq), seqDigits)

	return contract.TaskInstanceID(b)
}

// appendBase62 정수 값을 Base62로 인코딩하여 버퍼에 추가합니다.
// 음수는 절댓값으로 처리합니다.
func appendBase62(dst []byte, num int64) []byte {
	if num == 0 {
		return append(dst, base62Chars[0])
	}
	if num < 0 {
		num = -num
	}

	var tmp [20]byte
	i := len(tmp)
	for num > 0 {
		i--
		tmp[i] = base62Chars[num%base62Len]
		num /= base62Len
	}

	return append(dst, tmp[i:]...)
}

// appendBase62Padded 정수 값을 Base62로 인코딩하되 지정된 고정 길이가 되도록
// 앞쪽을 '0'으로 패딩하여 버퍼에 추가합니다. 인코딩 결과가 지정된 길이를
// 초과하면 패딩 없이 전체 자릿수를 그대로 추가합니다.
func appendBase62Padded(dst []byte, num int64, length int) []byte {
	if num < 0 {
		num = -num
	}

	var tmp [20]byte
	i := len(tmp)
	for num > 0 {
		i--
		tmp[i] = base62Chars[num%base62Len]
		num /= base62Len
	}
	for len(tmp)-i < length {
		i--
		tmp[i] = base62Chars[0]
	}

	return append(dst, tmp[i:]...)
}
