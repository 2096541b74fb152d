package list_halls

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls/models"
)

type HallService interface {
	List(ctx context.Context, includeInactive bool) (*models.HallListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
