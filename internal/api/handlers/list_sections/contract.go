package list_sections

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections/models"
)

type SectionService interface {
	List(ctx context.Context) (*models.SectionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
