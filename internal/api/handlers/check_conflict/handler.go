package check_conflict

import (
	"errors"
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	checkConflict "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры проверки"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-conflict
//
// Консультативная проверка для формы бронирования. Семантика та же,
// что у проверки при создании, но без блокировок: положительный ответ
// не резервирует слот.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-conflict - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/check-conflict - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings/check-conflict - Invalid time range: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check-conflict - Invalid input: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/check-conflict - Failed to check conflict: hall_id=%d, error=%v",
				req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/check-conflict - Checked: hall_id=%d, has_conflict=%t",
		req.HallID, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
