// Package domain API 서비스의 도메인 모델을 정의합니다.
package domain

// Application API를 사용할 수 있도록 등록된 클라이언트 애플리케이션입니다.
type Application struct {
	// ID 애플리케이션의 고유 식별자입니다.
	ID string

	// Title 애플리케이션의 이름입니다.
	Title string

	// Description 애플리케이션에 대한 설명입니다.
	Description string

	// AppKey 애플리케이션 인증에 사용되는 키입니다.
	AppKey string
}
