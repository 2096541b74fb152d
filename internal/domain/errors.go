package domain

import (
	"errors"
	"fmt"

	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// ErrSlotConflict is the sentinel for time-range conflicts; match with
// errors.Is. The concrete *ConflictError carries the conflicting booking.
var ErrSlotConflict = errors.New("time slot conflicts with an existing booking")

// ConflictError reports that a requested time range overlaps an existing
// active booking. It carries the conflicting booking's identity, status and
// range so the caller can tell the user which slot is taken.
type ConflictError struct {
	BookingID int64
	Status    BookingStatus
	StartTime types.TimeString
	EndTime   types.TimeString
}

// NewConflictError builds a ConflictError from the conflicting booking
func NewConflictError(b *Booking) *ConflictError {
	return &ConflictError{
		BookingID: b.ID,
		Status:    b.Status,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with an existing %s booking (%s - %s)",
		e.Status, e.StartTime, e.EndTime)
}

// Unwrap makes errors.Is(err, ErrSlotConflict) match
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
