package members

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник клуба не найден
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
