package create_booking

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	createBooking "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/create_booking"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Владелец берётся из заголовка шлюза, не из тела.
type CreateBookingRequest struct {
	HallID      int64   `json:"hallId"`
	Date        string  `json:"date"`      // "2026-03-10"
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "10:30"
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
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID int64) (*createBooking.Request, error) {
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

	return &createBooking.Request{
		OwnerID:     ownerID,
		HallID:      r.HallID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Purpose:     r.Purpose,
		MeetingLink: r.MeetingLink,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
