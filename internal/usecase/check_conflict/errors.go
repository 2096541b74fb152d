package check_conflict

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflict: invalid input data")

	// ErrInvalidTimeRange возвращается, когда startTime >= endTime
	ErrInvalidTimeRange = errors.New("check_conflict: start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflict: internal error")
)
