package get_dashboard_stats

import (
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - Dashboard built: total=%d, pending=%d", result.Total, result.Pending)
	handlers.RespondJSON(w, http.StatusOK, result)
}
