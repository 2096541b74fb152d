package list_sections

import (
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
)

type Handler struct {
	service SectionService
	logger  Logger
}

func NewHandler(service SectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /sections - Failed to list sections: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sections - Retrieved %d sections", len(result.Sections))
	handlers.RespondJSON(w, http.StatusOK, result)
}
