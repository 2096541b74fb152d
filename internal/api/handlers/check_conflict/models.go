package check_conflict

import (
	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
	checkConflict "github.com/aryanakulan-rgb/conferencehall-allocation/internal/usecase/check_conflict"
	"github.com/aryanakulan-rgb/conferencehall-allocation/pkg/types"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	HallID    int64  `json:"hallId"`
	Date      string `json:"date"`      // "2026-03-10"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:30"
	ExcludeID *int64 `json:"excludeId,omitempty"`
}

// ConflictDetails данные пересекающегося бронирования
type ConflictDetails struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict bool             `json:"hasConflict"`
	Conflict    *ConflictDetails `json:"conflict,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest() (*checkConflict.Request, error) {
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

	return &checkConflict.Request{
		HallID:    r.HallID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		ExcludeID: r.ExcludeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *CheckConflictResponse {
	out := &CheckConflictResponse{HasConflict: resp.HasConflict}
	if resp.Conflicting != nil {
		out.Conflict = &ConflictDetails{
			BookingID: resp.Conflicting.BookingID,
			Status:    string(resp.Conflicting.Status),
			StartTime: resp.Conflicting.StartTime.String(),
			EndTime:   resp.Conflicting.EndTime.String(),
		}
	}
	return out
}
