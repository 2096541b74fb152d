package edit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	bookingRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/booking"
	hallRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/hall"
	checkConflict "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/ptr"
)

// UseCase use case редактирования бронирования.
// Редактировать может только владелец и только pending-бронирование:
// после решения администратора запись не должна меняться у него под ногами.
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

// Execute выполняет use case редактирования бронирования.
// Проверка конфликта исключает собственный ID бронирования, чтобы запись
// не конфликтовала сама с собой при редактировании "на месте".
// Как и создание, перепроверка и запись идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: booking=%d, requester=%d, hall=%d, date=%s, time=%s-%s",
		req.BookingID, req.RequesterID, req.HallID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем целевой зал
	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("EditBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("EditBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if !hall.AcceptsBookings() {
		uc.logger.Warn("EditBooking: hall id=%d is not active", req.HallID)
		return nil, ErrHallNotActive
	}

	var result *domain.Booking

	// 3. Проверки состояния, конфликта и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Только владелец, только pending
		if booking.UserID != req.RequesterID {
			uc.logger.Warn("EditBooking: user=%d is not the owner of booking id=%d", req.RequesterID, req.BookingID)
			return ErrAccessDenied
		}
		if !booking.IsPending() {
			uc.logger.Warn("EditBooking: booking id=%d has status=%s, editing locked", req.BookingID, booking.Status)
			return ErrInvalidState
		}

		// Перепроверка конфликта, исключая собственный ID
		check, err := uc.checker.Execute(txCtx, &checkConflict.Request{
			HallID:    req.HallID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			ExcludeID: ptr.Ptr(req.BookingID),
		})
		if err != nil {
			uc.logger.Error("EditBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if check.HasConflict {
			uc.logger.Warn("EditBooking: conflict with booking id=%d (%s, %s-%s)",
				check.Conflicting.BookingID, check.Conflicting.Status,
				check.Conflicting.StartTime, check.Conflicting.EndTime)
			return check.Conflicting
		}

		booking.HallID = req.HallID
		booking.Date = req.Date
		booking.StartTime = req.StartTime
		booking.EndTime = req.EndTime
		booking.Purpose = req.Purpose
		booking.MeetingLink = req.MeetingLink

		if err := uc.bookingRepo.UpdateFields(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("EditBooking: slot taken at write time, booking id=%d", req.BookingID)
				return domain.ErrSlotConflict
			}
			uc.logger.Error("EditBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%d", result.ID)

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
