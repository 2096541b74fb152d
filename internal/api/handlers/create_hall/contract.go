package create_hall

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls/models"
)

type HallService interface {
	Create(ctx context.Context, req *models.CreateHallRequest) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
