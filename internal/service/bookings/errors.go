package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidState возвращается при недопустимом переходе статуса.
	// Approve/reject определены только из pending - таблица переходов исчерпывающая.
	ErrInvalidState = errors.New("transition is not allowed from the current status")

	// ErrRemarksRequired возвращается при отклонении без указания причины
	ErrRemarksRequired = errors.New("rejection remarks are required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
