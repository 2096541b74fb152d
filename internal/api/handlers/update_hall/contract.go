package update_hall

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls/models"
)

type HallService interface {
	Update(ctx context.Context, hallID int64, req *models.UpdateHallRequest) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
