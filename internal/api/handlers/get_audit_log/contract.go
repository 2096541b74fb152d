package get_audit_log

import (
	"context"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/stats/models"
)

type StatsService interface {
	RecentActivity(ctx context.Context, limit uint64) (*models.AuditLogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
