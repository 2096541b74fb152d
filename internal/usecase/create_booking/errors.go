package create_booking

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("create_booking: hall not found")

	// ErrHallNotActive возвращается, когда зал деактивирован и не принимает бронирования
	ErrHallNotActive = errors.New("create_booking: hall is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	ErrInvalidTimeRange = errors.New("create_booking: start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
