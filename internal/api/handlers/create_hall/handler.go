package create_hall

import (
	"errors"
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgDuplicateName      = "зал с таким именем уже существует"
	msgInvalidInput       = "некорректные данные зала"
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

// Handle POST /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /halls - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CreateHallRequest{
		AdminID:     adminID,
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Description: req.Description,
		Facilities:  req.Facilities,
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrDuplicateName):
			h.logger.Warn("POST /halls - Duplicate name: name=%s", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, halls.ErrInvalidInput):
			h.logger.Warn("POST /halls - Invalid input: name=%s", req.Name)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /halls - Failed to create hall: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /halls - Hall created: hall_id=%d, admin_id=%d", result.ID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
