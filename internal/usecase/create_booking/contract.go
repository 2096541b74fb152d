package create_booking

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	checkConflict "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// ConflictChecker интерфейс проверки конфликтов.
// Внутри транзакции проверка выполняется на заблокированном срезе данных:
// активная транзакция передаётся через context.
type ConflictChecker interface {
	Execute(ctx context.Context, req *checkConflict.Request) (*checkConflict.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
