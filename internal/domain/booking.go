package domain

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// BookingStatus represents the status of a hall booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// Booking represents a hall reservation for a calendar date and time range.
// Date is a civil date without a time zone; StartTime/EndTime are wall-clock
// values on that date. The time range is half-open: [StartTime, EndTime).
type Booking struct {
	ID          int64
	HallID      int64
	UserID      int64
	Date        time.Time // date-only, compared as a local calendar date
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	MeetingLink *string
	Status      BookingStatus
	Remarks     *string // set on rejection

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict detection
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsPending returns true if the booking awaits an administrator decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsTerminal returns true if no further status transition is defined
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// CanBeEditedBy returns true if the user may edit the booking.
// Only the owner may edit, and only while the booking is pending.
func (b *Booking) CanBeEditedBy(userID int64) bool {
	return b.UserID == userID && b.Status == StatusPending
}

// Overlaps reports whether the half-open range [start, end) intersects
// the booking's own range. Bookings that share only a boundary instant
// do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return start.IsBefore(b.EndTime) && end.IsAfter(b.StartTime)
}

// HallUsage количество активных бронирований зала, для отчётности
type HallUsage struct {
	HallID   int64
	Bookings int64
}

// HallScheduleFilter фильтр для выборки бронирований зала
type HallScheduleFilter struct {
	HallID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклонённые бронирования
}
