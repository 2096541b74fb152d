package domain

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ParseDate разбирает дату YYYY-MM-DD как локальную календарную дату.
// Единая точка разбора: дата не проходит через UTC-инстант,
// чтобы не словить сдвиг на сутки.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// Business validation constants
const (
	MaxPurposeLength = 500
	MaxRemarksLength = 500
	MinHallCapacity  = 1
	MaxHallCapacity  = 1000
)

// TimeSlots грид получасовых слотов, который показывает форма бронирования.
// Это подсказка для клиентов: проверка конфликтов принимает любой диапазон
// со start < end и гридом не ограничена.
var TimeSlots = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// ActiveStatuses статусы бронирований, участвующих в проверке конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// ValidBookingStatus reports whether s is one of the known statuses
func ValidBookingStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
