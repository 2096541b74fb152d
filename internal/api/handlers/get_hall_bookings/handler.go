package get_hall_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/middleware"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/service/bookings/models"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/bookings?date=&from=&to=&status=&includeInactive=
//
// Публичное расписание зала. Отклонённые бронирования по умолчанию
// скрыты - слот с rejected свободен для новых заявок.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/bookings - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	query := r.URL.Query()
	req := &models.GetHallScheduleRequest{
		HallID:          hallID,
		IncludeInactive: query.Get("includeInactive") == "true",
		// Имена владельцев подтягиваются только для администраторов
		EnrichUsers: middleware.IsAdmin(r.Context()),
	}

	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if from := query.Get("from"); from != "" {
		req.StartDate = &from
	}
	if to := query.Get("to"); to != "" {
		req.EndDate = &to
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetHallSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/bookings - Invalid filter: hall_id=%d", hallID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /halls/{id}/bookings - Failed to get schedule: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/bookings - Retrieved %d bookings: hall_id=%d", len(result.Bookings), hallID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
