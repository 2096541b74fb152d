package get_hall_bookings

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings/models"
)

type BookingService interface {
	GetHallSchedule(ctx context.Context, req *models.GetHallScheduleRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
