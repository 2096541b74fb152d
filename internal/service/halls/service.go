package halls

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/hall"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls/models"
)

// Service сервис каталога залов.
// Создание и изменение залов доступно только администраторам,
// чтение - всем аутентифицированным пользователям.
type Service struct {
	hallRepo  HallRepository
	auditRepo AuditRepository
	logger    Logger
}

func New(hallRepo HallRepository, auditRepo AuditRepository, logger Logger) *Service {
	return &Service{
		hallRepo:  hallRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Create создаёт новый зал
func (s *Service) Create(ctx context.Context, req *models.CreateHallRequest) (*models.HallResponse, error) {
	if err := validateHallFields(req.Name, req.Type, req.Capacity); err != nil {
		return nil, err
	}

	newHall := &domain.Hall{
		Name:        strings.TrimSpace(req.Name),
		Type:        domain.HallType(req.Type),
		Capacity:    req.Capacity,
		Description: req.Description,
		Facilities:  req.Facilities,
		IsActive:    true,
	}

	created, err := s.hallRepo.Create(ctx, newHall)
	if err != nil {
		if errors.Is(err, hall.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: Create - name=%s", ErrDuplicateName, req.Name)
		}
		s.logger.Error("[halls.Create] Ошибка создания зала: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to create hall: %v", ErrInternal, err)
	}

	s.audit(ctx, req.AdminID, domain.AuditActionCreateHall,
		fmt.Sprintf("hall_id=%d name=%s type=%s capacity=%d", created.ID, created.Name, created.Type, created.Capacity))

	s.logger.Info("[halls.Create] Создан зал ID=%d name=%s", created.ID, created.Name)
	return models.FromDomainHall(created), nil
}

// GetByID возвращает зал по идентификатору
func (s *Service) GetByID(ctx context.Context, hallID int64) (*models.HallResponse, error) {
	found, err := s.hallRepo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, hall.ErrHallNotFound) {
			return nil, fmt.Errorf("%w: GetByID - hallID=%d", ErrHallNotFound, hallID)
		}
		s.logger.Error("[halls.GetByID] Ошибка получения зала ID=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get hall: %v", ErrInternal, err)
	}
	return models.FromDomainHall(found), nil
}

// List возвращает список залов.
// Обычные пользователи видят только активные залы,
// администраторы - все, включая деактивированные.
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.HallListResponse, error) {
	halls, err := s.hallRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("[halls.List] Ошибка получения списка залов: %v", err)
		return nil, fmt.Errorf("%w: List - failed to list halls: %v", ErrInternal, err)
	}
	return models.FromDomainHallList(halls), nil
}

// Update обновляет параметры зала.
// IsActive=false деактивирует зал: новые бронирования перестают приниматься,
// существующие при этом не затрагиваются.
func (s *Service) Update(ctx context.Context, hallID int64, req *models.UpdateHallRequest) (*models.HallResponse, error) {
	if err := validateHallFields(req.Name, req.Type, req.Capacity); err != nil {
		return nil, err
	}

	existing, err := s.hallRepo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, hall.ErrHallNotFound) {
			return nil, fmt.Errorf("%w: Update - hallID=%d", ErrHallNotFound, hallID)
		}
		s.logger.Error("[halls.Update] Ошибка получения зала ID=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: Update - failed to get hall: %v", ErrInternal, err)
	}

	wasActive := existing.IsActive

	existing.Name = strings.TrimSpace(req.Name)
	existing.Type = domain.HallType(req.Type)
	existing.Capacity = req.Capacity
	existing.Description = req.Description
	existing.Facilities = req.Facilities
	existing.IsActive = req.IsActive

	if err := s.hallRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, hall.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: Update - name=%s", ErrDuplicateName, req.Name)
		}
		if errors.Is(err, hall.ErrHallNotFound) {
			return nil, fmt.Errorf("%w: Update - hallID=%d", ErrHallNotFound, hallID)
		}
		s.logger.Error("[halls.Update] Ошибка обновления зала ID=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: Update - failed to update hall: %v", ErrInternal, err)
	}

	action := domain.AuditActionUpdateHall
	if wasActive && !req.IsActive {
		action = domain.AuditActionDeactivateHall
	}
	s.audit(ctx, req.AdminID, action,
		fmt.Sprintf("hall_id=%d name=%s active=%t", hallID, existing.Name, existing.IsActive))

	s.logger.Info("[halls.Update] Обновлён зал ID=%d", hallID)
	return models.FromDomainHall(existing), nil
}

func validateHallFields(name, hallType string, capacity int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: hall name is required", ErrInvalidInput)
	}
	if !domain.ValidHallType(domain.HallType(hallType)) {
		return fmt.Errorf("%w: unknown hall type %q", ErrInvalidInput, hallType)
	}
	if capacity < domain.MinHallCapacity || capacity > domain.MaxHallCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinHallCapacity, domain.MaxHallCapacity)
	}
	return nil
}

// audit пишет запись в журнал действий. Сбой записи не прерывает операцию.
func (s *Service) audit(ctx context.Context, adminID int64, action, details string) {
	err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		UserID:  adminID,
		Action:  action,
		Details: details,
	})
	if err != nil {
		s.logger.Warn("[halls.audit] Не удалось записать действие %s: %v", action, err)
	}
}
