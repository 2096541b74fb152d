package create_section

import (
	"errors"
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/sections/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicateCode      = "секция с таким кодом уже существует"
	msgInvalidInput       = "необходимо указать имя и код секции"
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

// Handle POST /api/v1/sections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sections - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sections.ErrDuplicateCode):
			h.logger.Warn("POST /sections - Duplicate code: code=%s", req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		case errors.Is(err, sections.ErrInvalidInput):
			h.logger.Warn("POST /sections - Invalid input: code=%s", req.Code)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sections - Failed to create section: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sections - Section created: section_id=%d, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
