package create_booking

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	OwnerID     int64            // ID пользователя-владельца (явный параметр, без глобального контекста)
	HallID      int64            // ID зала
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Начало, включительно
	EndTime     types.TimeString // Конец, исключительно
	Purpose     string           // Цель бронирования
	MeetingLink *string          // Ссылка на встречу (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	HallID      int64
	UserID      int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	MeetingLink *string
	Status      string // Всегда "pending" для нового бронирования

	CreatedAt time.Time
	UpdatedAt time.Time
}
