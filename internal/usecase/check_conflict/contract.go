package check_conflict

import (
	"context"
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveForSlot(ctx context.Context, hallID int64, date time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
