package stats

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований для отчётности
type BookingRepository interface {
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
	CountActivePerHall(ctx context.Context) ([]domain.HallUsage, error)
}

// AuditRepository интерфейс журнала действий администраторов
type AuditRepository interface {
	ListRecent(ctx context.Context, limit uint64) ([]*domain.AuditEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
