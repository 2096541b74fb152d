package delete_section

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections"
)

const (
	msgInvalidSectionID = "некорректный ID секции"
	msgNotFound         = "секция не найдена"
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

// Handle DELETE /api/v1/sections/{sectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(mux.Vars(r)["sectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sections/{id} - Invalid section ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSectionID)
		return
	}

	if err := h.service.Delete(r.Context(), sectionID); err != nil {
		switch {
		case errors.Is(err, sections.ErrSectionNotFound):
			h.logger.Warn("DELETE /sections/{id} - Section not found: section_id=%d", sectionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /sections/{id} - Failed to delete section: section_id=%d, error=%v",
				sectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sections/{id} - Section deleted: section_id=%d", sectionID)
	handlers.RespondNoContent(w)
}
