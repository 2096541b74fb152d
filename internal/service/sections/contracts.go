package sections

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

// SectionRepository интерфейс репозитория секций
type SectionRepository interface {
	Create(ctx context.Context, section *domain.Section) (*domain.Section, error)
	List(ctx context.Context) ([]*domain.Section, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
