package approve_booking

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings/models"
)

type BookingService interface {
	Approve(ctx context.Context, bookingID int64, adminID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
