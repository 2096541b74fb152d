package halls

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Hall, error)
	Update(ctx context.Context, hall *domain.Hall) error
}

// AuditRepository интерфейс журнала административных действий
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
