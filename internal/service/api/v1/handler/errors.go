package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/setting-server/internal/pkg/errors"

	"github.com/darkkaiser/setting-server/internal/service/api/httputil"
)

// toHTTPError 애플리케이션 에러를 클라이언트에게 반환할 HTTP 에러로 변환합니다.
//
// 이미 HTTP 에러인 경우에는 그대로 반환하며, 그 외에는 에러 타입에 따라
// 적절한 상태 코드로 매핑합니다.
func toHTTPError(err error) error {
	if err == nil {
		return nil
	}

	if he, ok := err.(*echo.HTTPError); ok {
		return he
	}

	switch {
	case apperrors.Is(err, apperrors.InvalidInput):
		return httputil.NewBadRequestError(err.Error())
	case apperrors.Is(err, apperrors.NotFound):
		return httputil.NewNotFoundError(err.Error())
	case apperrors.Is(err, apperrors.Timeout):
		return httputil.NewGatewayTimeoutError("디바이스 작업 처리가 제한 시간 내에 완료되지 않았습니다")
	case apperrors.Is(err, apperrors.Cancelled):
		return httputil.NewServiceUnavailableError("디바이스 작업이 취소되었습니다. 잠시 후 다시 시도해주세요")
	case apperrors.Is(err, apperrors.Unavailable):
		return httputil.NewServiceUnavailableError("디바이스가 현재 요청을 처리할 수 없습니다. 잠시 후 다시 시도해주세요")
	default:
		return httputil.NewInternalServerError("요청 처리 중 오류가 발생했습니다")
	}
}
