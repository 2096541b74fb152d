package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrAccessDenied возвращается, когда редактирует не владелец бронирования
	ErrAccessDenied = errors.New("edit_booking: only the owner may edit a booking")

	// ErrInvalidState возвращается при попытке редактировать не-pending бронирование.
	// После решения администратора запись историческая и молча меняться не должна.
	ErrInvalidState = errors.New("edit_booking: only pending bookings can be edited")

	// ErrHallNotFound возвращается, когда целевой зал не найден
	ErrHallNotFound = errors.New("edit_booking: hall not found")

	// ErrHallNotActive возвращается, когда целевой зал деактивирован
	ErrHallNotActive = errors.New("edit_booking: hall is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	ErrInvalidTimeRange = errors.New("edit_booking: start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
