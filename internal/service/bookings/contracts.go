package bookings

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/integrations/directoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByHallWithFilter(ctx context.Context, filter domain.HallScheduleFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, remarks *string) error
	Delete(ctx context.Context, id int64) error
}

// AuditRepository интерфейс журнала административных действий
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// DirectoryClient интерфейс клиента справочника пользователей
type DirectoryClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*directoryservice.UserProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
