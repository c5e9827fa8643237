package authservice

import "errors"

var (
	// ErrUnauthenticated возвращается, когда токен отсутствует, просрочен или отозван
	ErrUnauthenticated = errors.New("authservice client: unauthenticated")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
