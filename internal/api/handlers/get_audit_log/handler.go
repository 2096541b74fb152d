package get_audit_log

import (
	"net/http"
	"strconv"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
)

const msgInvalidLimit = "параметр limit должен быть положительным числом"

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

// Handle GET /api/v1/dashboard/audit?limit=50
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.RecentActivity(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /dashboard/audit - Failed to list audit log: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/audit - Returned %d entries", len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
