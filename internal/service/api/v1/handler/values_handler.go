package handler

import (
	"io"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	"github.com/darkkaiser/setting-server/internal/service/api/httputil"
	"github.com/darkkaiser/setting-server/internal/service/api/v1/model/response"
)

// normalizeSettingKey 설정 키를 저장소에서 사용하는 snake_case 형식으로 정규화합니다.
// (예: "screenBrightness", "Screen-Brightness" => "screen_brightness")
func normalizeSettingKey(key string) string {
	return strcase.ToSnake(strings.TrimSpace(key))
}

// GetRawValueHandler godoc
// @Summary 설정 값 직접 조회
// @Description 설정 저장소에서 지정된 키의 정수 값을 직접 조회합니다.
// @Description 키는 snake_case로 정규화되어 처리됩니다. (예: screenBrightness => screen_brightness)
// @Tags Settings
// @Produce json
// @Param key path string true "설정 키" example(screen_brightness)
// @Success 200 {object} response.RawValueResponse "조회 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 404 {object} response.ErrorResponse "설정 값이 존재하지 않음"
// @Security ApiKeyAuth
// @Router /api/v1/settings/values/{key} [get]
func (h *Handler) GetRawValueHandler(c echo.Context) error {
	key := normalizeSettingKey(c.Param("key"))
	if key == "" {
		return httputil.NewBadRequestError("설정 키는 필수입니다")
	}

	value, err := h.facade.GetRawValue(key)
	if err != nil {
		return toHTTPError(err)
	}

	return httputil.SuccessWith(c, response.RawValueResponse{Key: key, Value: value})
}

// SetRawValueHandler godoc
// @Summary 설정 값 직접 변경
// @Description 설정 저장소에 지정된 키의 정수 값을 직접 기록합니다.
// @Description 요청 본문은 value 필드를 가진 JSON이어야 하며,
// @Description 키는 snake_case로 정규화되어 처리됩니다.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "설정 키" example(screen_brightness)
// @Param value body object true "변경할 값 (예: {\"value\": 102})"
// @Success 200 {object} response.RawValueResponse "변경 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/settings/values/{key} [put]
func (h *Handler) SetRawValueHandler(c echo.Context) error {
	key := normalizeSettingKey(c.Param("key"))
	if key == "" {
		return httputil.NewBadRequestError("설정 키는 필수입니다")
	}

	bodyBytes, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return httputil.NewBadRequestError("요청 본문을 읽을 수 없습니다")
	}
	if !gjson.ValidBytes(bodyBytes) {
		return httputil.NewBadRequestError("잘못된 JSON 형식입니다")
	}

	result := gjson.GetBytes(bodyBytes, "value")
	if !result.Exists() {
		return httputil.NewBadRequestError("value는 필수입니다")
	}
	if result.Type != gjson.Number {
		return httputil.NewBadRequestError("value는 정수여야 합니다")
	}

	value := int(result.Int())
	if err := h.facade.SetRawValue(key, value); err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithFields(map[string]interface{}{
		"key":   key,
		"value": value,
	}).Info("설정 값 직접 변경됨")

	return httputil.SuccessWith(c, response.RawValueResponse{Key: key, Value: value})
}
