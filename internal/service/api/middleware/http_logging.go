package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	applog "github.com/darkkaiser/setting-server/pkg/log"
	"github.com/darkkaiser/setting-server/pkg/strutil"

	"github.com/darkkaiser/setting-server/internal/service/api/constants"
)

// defaultBytesIn Content-Length 헤더가 존재하지 않는 경우(예: Chunked Transfer Encoding 사용 시)
// bytes_in 로그 필드에 기록될 기본값입니다.
const defaultBytesIn = "0"

// sensitiveQueryParams HTTP 요청 로깅 시 값을 마스킹 처리해야 하는 쿼리 파라미터 키 목록입니다.
var sensitiveQueryParams = []string{
	constants.QueryParamAppKey,
	"api_key",
	"password",
	"token",
	"secret",
}

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 요청/응답 정보와 처리 시간을 기록하며, 민감한 쿼리 파라미터(app_key 등)는
// 자동으로 마스킹 처리됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return httpLoggerHandler(c, next)
		}
	}
}

func httpLoggerHandler(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	// 패닉이 발생하더라도 로그가 기록되도록 defer로 처리한다.
	defer func() {
		stop := time.Now()
		latency := stop.Sub(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		applog.WithFields(applog.Fields{
			"time_rfc3339": stop.Format(time.RFC3339),

			"method":   req.Method,
			"path":     path,
			"uri":      maskSensitiveQueryParams(req.RequestURI),
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),
			"referer":    req.Referer(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Nanoseconds()/1000, 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		}).Info("HTTP 요청")
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱에 실패하는 경우에는 로깅이 중단되지 않도록 원본을 그대로 반환합니다.
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range sensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if masked {
		u.RawQuery = q.Encode()
		return u.String()
	}

	return uri
}
