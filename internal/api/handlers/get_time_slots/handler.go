package get_time_slots

import (
	"net/http"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/api/handlers"
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

// Handle GET /api/v1/time-slots
//
// Грид получасовых слотов для формы бронирования. Подсказка для клиентов:
// сервер принимает любой диапазон со start < end.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := make([]string, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		slots = append(slots, slot.String())
	}

	h.logger.Info("GET /time-slots - Returned %d slots", len(slots))
	handlers.RespondJSON(w, http.StatusOK, TimeSlotsResponse{Slots: slots})
}
