package create_section

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections/models"
)

type SectionService interface {
	Create(ctx context.Context, req *models.CreateSectionRequest) (*models.SectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
