package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	bookingRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/booking"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
// Машина состояний: pending -> approved | rejected; оба конечных статуса
// необратимы, кроме административного force delete.
type Service struct {
	bookingRepo BookingRepository
	auditRepo   AuditRepository
	directory   DirectoryClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	auditRepo AuditRepository,
	directory DirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		directory:   directory,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование, администратор - любое.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64, isAdmin bool) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Свою историю видит каждый, чужую - только администратор.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	if req.UserID != req.RequesterID && !req.IsAdmin {
		s.logger.Warn("GetUserBookings: access denied for user=%d to history of user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetHallSchedule получает расписание зала с фильтрацией по периоду и статусу.
// Отклонённые бронирования исключаются, если не запрошены явно.
// Для админ-листингов ответы обогащаются именами и секциями из справочника;
// недоступность справочника листинг не валит - поля остаются пустыми.
func (s *Service) GetHallSchedule(ctx context.Context, req *models.GetHallScheduleRequest) (*models.BookingListResponse, error) {
	filter, err := s.buildScheduleFilter(req)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByHallWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHallSchedule: repository error for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: GetHallSchedule - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBookingList(bookings)

	if req.EnrichUsers {
		s.enrichWithDirectory(ctx, resp)
	}

	s.logger.Info("GetHallSchedule: fetched %d bookings for hall=%d", len(bookings), req.HallID)
	return resp, nil
}

// Approve одобряет pending-бронирование.
// Причина не требуется: молчание само по себе информативно - заявка
// принимается в том виде, в каком подана.
func (s *Service) Approve(ctx context.Context, bookingID int64, adminID int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, bookingID, "Approve")
	if err != nil {
		return nil, err
	}

	if !booking.IsPending() {
		s.logger.Warn("Approve: booking id=%d has status=%s, transition not allowed", bookingID, booking.Status)
		return nil, ErrInvalidState
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusApproved, nil); err != nil {
		return nil, s.mapUpdateErr("Approve", bookingID, err)
	}

	s.audit(ctx, adminID, domain.AuditActionApproveBooking,
		fmt.Sprintf("booking_id=%d hall_id=%d date=%s %s-%s",
			bookingID, booking.HallID, booking.Date.Format(domain.DateFormat), booking.StartTime, booking.EndTime))

	booking.Status = domain.StatusApproved
	s.logger.Info("Approve: booking id=%d approved by admin=%d", bookingID, adminID)
	return models.FromDomainBooking(booking), nil
}

// Reject отклоняет pending-бронирование с обязательной причиной.
// Отклонение - единственный переход, который должен объяснить заявителю "почему",
// поэтому пустые remarks не принимаются и не подменяются дефолтом.
func (s *Service) Reject(ctx context.Context, bookingID int64, req *models.RejectBookingRequest) (*models.BookingResponse, error) {
	remarks := strings.TrimSpace(req.Remarks)
	if remarks == "" {
		s.logger.Warn("Reject: empty remarks for booking id=%d", bookingID)
		return nil, ErrRemarksRequired
	}
	if len(remarks) > domain.MaxRemarksLength {
		s.logger.Warn("Reject: remarks too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: remarks exceed %d characters", ErrInvalidInput, domain.MaxRemarksLength)
	}

	booking, err := s.getBooking(ctx, bookingID, "Reject")
	if err != nil {
		return nil, err
	}

	if !booking.IsPending() {
		s.logger.Warn("Reject: booking id=%d has status=%s, transition not allowed", bookingID, booking.Status)
		return nil, ErrInvalidState
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusRejected, &remarks); err != nil {
		return nil, s.mapUpdateErr("Reject", bookingID, err)
	}

	s.audit(ctx, req.AdminID, domain.AuditActionRejectBooking,
		fmt.Sprintf("booking_id=%d remarks=%q", bookingID, remarks))

	booking.Status = domain.StatusRejected
	booking.Remarks = &remarks
	s.logger.Info("Reject: booking id=%d rejected by admin=%d", bookingID, req.AdminID)
	return models.FromDomainBooking(booking), nil
}

// Cancel удаляет бронирование.
// Владелец может удалить только своё pending-бронирование. Администратор
// может удалить бронирование в любом статусе - это операционный override
// вне формальной таблицы переходов, и он фиксируется в журнале аудита.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}

	forceDelete := false
	switch {
	case booking.UserID == req.RequesterID:
		if !booking.IsPending() {
			if !req.IsAdmin {
				s.logger.Warn("Cancel: booking id=%d has status=%s, owner cannot cancel", bookingID, booking.Status)
				return ErrInvalidState
			}
			forceDelete = true
		}
	case req.IsAdmin:
		// Удаление чужого бронирования - всегда административный override
		forceDelete = true
	default:
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.RequesterID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if forceDelete {
		s.audit(ctx, req.RequesterID, domain.AuditActionForceDelete,
			fmt.Sprintf("booking_id=%d status=%s owner=%d", bookingID, booking.Status, booking.UserID))
	}

	s.logger.Info("Cancel: booking id=%d deleted by user=%d (force=%t)", bookingID, req.RequesterID, forceDelete)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) mapUpdateErr(op string, id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%d not found during update", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// audit пишет действие администратора в журнал.
// Ошибка аудита логируется, но операцию не откатывает.
func (s *Service) audit(ctx context.Context, userID int64, action, details string) {
	err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		UserID:  userID,
		Action:  action,
		Details: details,
	})
	if err != nil {
		s.logger.Error("audit: failed to append %s entry: %v", action, err)
	}
}

// buildScheduleFilter конвертирует запрос в domain-фильтр с разбором дат
func (s *Service) buildScheduleFilter(req *models.GetHallScheduleRequest) (domain.HallScheduleFilter, error) {
	filter := domain.HallScheduleFilter{
		HallID:          req.HallID,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			s.logger.Warn("GetHallSchedule: invalid date=%s", *req.Date)
			return filter, fmt.Errorf("%w: invalid date", ErrInvalidInput)
		}
		filter.StartDate = &date
		filter.EndDate = &date
	} else {
		if req.StartDate != nil {
			date, err := domain.ParseDate(*req.StartDate)
			if err != nil {
				return filter, fmt.Errorf("%w: invalid startDate", ErrInvalidInput)
			}
			filter.StartDate = &date
		}
		if req.EndDate != nil {
			date, err := domain.ParseDate(*req.EndDate)
			if err != nil {
				return filter, fmt.Errorf("%w: invalid endDate", ErrInvalidInput)
			}
			filter.EndDate = &date
		}
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	return filter, nil
}

// enrichWithDirectory подтягивает имена и секции владельцев из справочника.
// Профили кэшируются в рамках запроса - в расписании зала один пользователь
// обычно встречается несколько раз.
func (s *Service) enrichWithDirectory(ctx context.Context, resp *models.BookingListResponse) {
	profiles := make(map[int64]*struct {
		name    string
		section string
	})

	for i := range resp.Bookings {
		userID := resp.Bookings[i].UserID

		cached, ok := profiles[userID]
		if !ok {
			profile, err := s.directory.GetUserWithGracefulDegradation(ctx, userID)
			if err != nil {
				// Справочник недоступен или пользователь не найден - листинг
				// отдаётся без имён, ошибка уже залогирована клиентом
				profiles[userID] = nil
				continue
			}
			cached = &struct {
				name    string
				section string
			}{name: profile.Name, section: profile.SectionName}
			profiles[userID] = cached
		}

		if cached != nil {
			resp.Bookings[i].UserName = &cached.name
			resp.Bookings[i].SectionName = &cached.section
		}
	}
}
