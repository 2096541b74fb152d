package update_hall

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/halls/models"
)

const (
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgHallNotFound       = "зал не найден"
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

// Handle PUT /api/v1/halls/{hallId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /halls/{id} - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /halls/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateHallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /halls/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateHallRequest{
		AdminID:     adminID,
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Description: req.Description,
		Facilities:  req.Facilities,
		IsActive:    req.IsActive,
	}

	result, err := h.service.Update(r.Context(), hallID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, halls.ErrHallNotFound):
			h.logger.Warn("PUT /halls/{id} - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, halls.ErrDuplicateName):
			h.logger.Warn("PUT /halls/{id} - Duplicate name: hall_id=%d, name=%s", hallID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, halls.ErrInvalidInput):
			h.logger.Warn("PUT /halls/{id} - Invalid input: hall_id=%d", hallID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /halls/{id} - Failed to update hall: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /halls/{id} - Hall updated: hall_id=%d, admin_id=%d", hallID, adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
