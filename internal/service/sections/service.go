package sections

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	sectionRepo "github.com/aryanakulan-rgb/conferencehall-allocation/internal/infra/storage/section"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections/models"
)

// Service сервис справочника секций.
// Секции - чисто организационный справочник для отчётности,
// на логику бронирования они не влияют.
type Service struct {
	sectionRepo SectionRepository
	logger      Logger
}

func New(sectionRepo SectionRepository, logger Logger) *Service {
	return &Service{
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// Create создаёт новую секцию
func (s *Service) Create(ctx context.Context, req *models.CreateSectionRequest) (*models.SectionResponse, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || code == "" {
		return nil, fmt.Errorf("%w: name and code are required", ErrInvalidInput)
	}

	created, err := s.sectionRepo.Create(ctx, &domain.Section{Name: name, Code: code})
	if err != nil {
		if errors.Is(err, sectionRepo.ErrDuplicateCode) {
			return nil, fmt.Errorf("%w: Create - code=%s", ErrDuplicateCode, code)
		}
		s.logger.Error("[sections.Create] Ошибка создания секции: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to create section: %v", ErrInternal, err)
	}

	s.logger.Info("[sections.Create] Создана секция ID=%d code=%s", created.ID, created.Code)
	return models.FromDomainSection(created), nil
}

// List возвращает все секции
func (s *Service) List(ctx context.Context) (*models.SectionListResponse, error) {
	sections, err := s.sectionRepo.List(ctx)
	if err != nil {
		s.logger.Error("[sections.List] Ошибка получения списка секций: %v", err)
		return nil, fmt.Errorf("%w: List - failed to list sections: %v", ErrInternal, err)
	}
	return models.FromDomainSectionList(sections), nil
}

// Delete удаляет секцию
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sectionRepo.ErrSectionNotFound) {
			return fmt.Errorf("%w: Delete - sectionID=%d", ErrSectionNotFound, id)
		}
		s.logger.Error("[sections.Delete] Ошибка удаления секции ID=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to delete section: %v", ErrInternal, err)
	}

	s.logger.Info("[sections.Delete] Удалена секция ID=%d", id)
	return nil
}
