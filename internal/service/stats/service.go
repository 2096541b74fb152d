package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/stats/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// Service сервис сводной статистики для панели администратора
type Service struct {
	bookingRepo BookingRepository
	auditRepo   AuditRepository
	logger      Logger
}

func New(bookingRepo BookingRepository, auditRepo AuditRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// Dashboard собирает сводку: счётчики по статусам, долю одобрений
// и загрузку залов. Доля считается только от обработанных заявок -
// pending в знаменатель не входят.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("[stats.Dashboard] Ошибка подсчёта по статусам: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count by status: %v", ErrInternal, err)
	}

	usage, err := s.bookingRepo.CountActivePerHall(ctx)
	if err != nil {
		s.logger.Error("[stats.Dashboard] Ошибка подсчёта загрузки залов: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count per hall: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		Pending:   counts[domain.StatusPending],
		Approved:  counts[domain.StatusApproved],
		Rejected:  counts[domain.StatusRejected],
		HallUsage: make([]models.HallUsageStat, 0, len(usage)),
	}
	resp.Total = resp.Pending + resp.Approved + resp.Rejected
	resp.Processed = resp.Approved + resp.Rejected

	if resp.Processed > 0 {
		rate := float64(resp.Approved) / float64(resp.Processed) * 100
		// Два знака после запятой, чтобы панель не показывала 33.333333...
		resp.ApprovalRate = math.Round(rate*100) / 100
	}

	for _, hallUsage := range usage {
		resp.HallUsage = append(resp.HallUsage, models.HallUsageStat{
			HallID:   hallUsage.HallID,
			Bookings: hallUsage.Bookings,
		})
	}

	return resp, nil
}

// RecentActivity возвращает последние записи журнала действий администраторов,
// от новых к старым. limit=0 означает значение по умолчанию.
func (s *Service) RecentActivity(ctx context.Context, limit uint64) (*models.AuditLogResponse, error) {
	if limit == 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("[stats.RecentActivity] Ошибка чтения журнала действий: %v", err)
		return nil, fmt.Errorf("%w: RecentActivity - list audit log: %v", ErrInternal, err)
	}

	resp := &models.AuditLogResponse{
		Entries: make([]models.AuditEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, models.AuditEntryResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Action:    entry.Action,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
	}

	return resp, nil
}
