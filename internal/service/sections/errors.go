package sections

import "errors"

var (
	// ErrSectionNotFound возвращается, когда секция не найдена
	ErrSectionNotFound = errors.New("section not found")

	// ErrDuplicateCode возвращается при попытке создать секцию с существующим кодом
	ErrDuplicateCode = errors.New("section code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sections service: internal error")
)
