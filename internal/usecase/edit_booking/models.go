package edit_booking

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	BookingID   int64            // ID редактируемого бронирования
	RequesterID int64            // ID пользователя, выполняющего редактирование
	HallID      int64            // Новый зал (может совпадать с текущим)
	Date        time.Time        // Новая дата
	StartTime   types.TimeString // Новое начало
	EndTime     types.TimeString // Новый конец
	Purpose     string           // Новая цель
	MeetingLink *string          // Новая ссылка на встречу (опционально)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID          int64
	HallID      int64
	UserID      int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Purpose     string
	MeetingLink *string
	Status      string // Статус не меняется при редактировании

	CreatedAt time.Time
	UpdatedAt time.Time
}
