package edit_booking

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	editBooking "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/edit_booking"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// EditBookingRequest HTTP request model.
// Передаётся полный набор полей - частичное обновление не поддерживается.
type EditBookingRequest struct {
	HallID      int64   `json:"hallId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Purpose     string  `json:"purpose"`
	MeetingLink *string `json:"meetingLink,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	HallID      int64   `json:"hallId"`
	UserID      int64   `json:"userId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Purpose     string  `json:"purpose"`
	MeetingLink *string `json:"meetingLink,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(bookingID, requesterID int64) (*editBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &editBooking.Request{
		BookingID:   bookingID,
		RequesterID: requesterID,
		HallID:      r.HallID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Purpose:     r.Purpose,
		MeetingLink: r.MeetingLink,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		HallID:      resp.HallID,
		UserID:      resp.UserID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Purpose:     resp.Purpose,
		MeetingLink: resp.MeetingLink,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
