package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	bookingRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/booking"
	hallRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/hall"
	checkConflict "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
)

// UseCase use case для создания бронирования.
// Новое бронирование всегда создаётся в статусе pending и ждёт решения
// администратора.
type UseCase struct {
	bookingRepo BookingRepository
	hallRepo    HallRepository
	checker     ConflictChecker
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hallRepo HallRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		hallRepo:    hallRepo,
		checker:     checker,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции,
// чтобы две конкурентные заявки на пересекающиеся слоты не прошли обе:
// проверка по устаревшему чтению перепроверяется на заблокированном срезе
// непосредственно перед записью. Поздно обнаруженный конфликт возвращается
// вызывающему как обычный конфликт, а не как системный сбой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, hall=%d, date=%s, time=%s-%s",
		req.OwnerID, req.HallID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что зал существует и принимает бронирования
	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if !hall.AcceptsBookings() {
		uc.logger.Warn("CreateBooking: hall id=%d is not active", req.HallID)
		return nil, ErrHallNotActive
	}

	var result *domain.Booking

	// 3. Проверка конфликта и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Авторитетная проверка конфликта на заблокированном срезе
		check, err := uc.checker.Execute(txCtx, &checkConflict.Request{
			HallID:    req.HallID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if check.HasConflict {
			uc.logger.Warn("CreateBooking: conflict with booking id=%d (%s, %s-%s)",
				check.Conflicting.BookingID, check.Conflicting.Status,
				check.Conflicting.StartTime, check.Conflicting.EndTime)
			return check.Conflicting
		}

		// 3.2. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			HallID:      req.HallID,
			UserID:      req.OwnerID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Purpose:     req.Purpose,
			MeetingLink: req.MeetingLink,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Exclusion-констрейнт в схеме - последний рубеж: конкурентная
			// запись, проскочившая мимо проверки, отражается как конфликт
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken at write time, hall=%d date=%s",
					req.HallID, req.Date.Format(domain.DateFormat))
				return domain.ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (pending)", result.ID)

	return &Response{
		ID:          result.ID,
		HallID:      result.HallID,
		UserID:      result.UserID,
		Date:        result.Date,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Purpose:     result.Purpose,
		MeetingLink: result.MeetingLink,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
