package check_conflict

import (
	"context"
	"fmt"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

// UseCase проверка конфликтов бронирования.
// Чистая функция от входных данных и текущего набора активных бронирований:
// без побочных эффектов, безопасна для повторных вызовов (живая валидация формы).
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute проверяет, пересекается ли запрошенный диапазон [StartTime, EndTime)
// с активными (pending/approved) бронированиями зала на указанную дату.
// Отклонённые бронирования в проверке не участвуют. Полуоткрытые интервалы:
// бронирования встык (конец одного равен началу другого) не конфликтуют.
// Возвращается первое пересечение в порядке start_time ASC - любое
// пересечение является жёстким конфликтом, "лучшего" среди них нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.ListActiveForSlot(ctx, req.HallID, req.Date, req.ExcludeID)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to list active bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		if booking.Overlaps(req.StartTime, req.EndTime) {
			uc.logger.Info("CheckConflict: hall=%d date=%s %s-%s conflicts with booking id=%d (%s, %s-%s)",
				req.HallID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
				booking.ID, booking.Status, booking.StartTime, booking.EndTime)

			return &Response{
				HasConflict: true,
				Conflicting: domain.NewConflictError(booking),
			}, nil
		}
	}

	return &Response{HasConflict: false}, nil
}
