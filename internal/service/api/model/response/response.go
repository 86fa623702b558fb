// Package response API 응답 모델을 정의합니다.
package response

// ErrorResponse API 요청 처리 중 오류가 발생했을 때 반환되는 응답입니다.
type ErrorResponse struct {
	// ResultCode 처리 결과 코드 (0이 아닌 값은 오류를 의미합니다)
	ResultCode int `json:"result_code" example:"400"`

	// Message 오류에 대한 설명 메시지
	Message string `json:"message" example:"잘못된 요청입니다"`
}

// SuccessResponse API 요청이 정상적으로 처리되었을 때 반환되는 응답입니다.
type SuccessResponse struct {
	// ResultCode 처리 결과 코드 (0은 성공을 의미합니다)
	ResultCode int `json:"result_code" example:"0"`
}
