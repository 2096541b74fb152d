package check_conflict

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// Request модель запроса на проверку конфликта
type Request struct {
	HallID    int64            // ID зала
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Начало диапазона, включительно
	EndTime   types.TimeString // Конец диапазона, исключительно
	ExcludeID *int64           // Собственный ID при перепроверке редактирования (опционально)
}

// Response результат проверки конфликта
type Response struct {
	HasConflict bool
	Conflicting *domain.ConflictError // Первое найденное пересечение, если есть
}
