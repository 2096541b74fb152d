package get_dashboard_stats

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/stats/models"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
