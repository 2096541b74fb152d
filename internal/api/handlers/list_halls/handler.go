package list_halls

import (
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
)

type Handler struct {
	service HallService
	logger  Logger
}

func NewHandler(service HallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls?active=true
//
// Деактивированные залы видят только администраторы и только
// по явному запросу active=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("active") == "false" && middleware.IsAdmin(r.Context())

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /halls - Retrieved %d halls", len(result.Halls))
	handlers.RespondJSON(w, http.StatusOK, result)
}
