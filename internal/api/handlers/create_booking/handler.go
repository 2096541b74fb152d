package create_booking

import (
	"errors"
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	createBooking "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgSlotConflict       = "выбранный интервал пересекается с существующим бронированием"
	msgHallNotFound       = "зал не найден"
	msgHallNotActive      = "зал не принимает бронирования"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, hall_id=%d, date=%s %s-%s",
				userID, req.HallID, req.Date, req.StartTime, req.EndTime)
			respondConflict(w, err)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrHallNotActive):
			h.logger.Warn("POST /bookings - Hall not active: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgHallNotActive)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, hall_id=%d, error=%v",
				userID, req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, hall_id=%d",
		result.ID, userID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondConflict отдаёт 409 с данными пересекающегося бронирования,
// чтобы клиент мог показать пользователю занятый интервал
func respondConflict(w http.ResponseWriter, err error) {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		handlers.RespondJSON(w, http.StatusConflict, conflictResponse{
			Error:     msgSlotConflict,
			BookingID: conflict.BookingID,
			Status:    string(conflict.Status),
			StartTime: conflict.StartTime.String(),
			EndTime:   conflict.EndTime.String(),
		})
		return
	}
	handlers.RespondConflict(w, msgSlotConflict)
}

type conflictResponse struct {
	Error     string `json:"error"`
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
