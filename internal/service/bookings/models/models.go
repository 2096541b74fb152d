package models

import (
	"errors"
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      int64   `json:"userId"`
	RequesterID int64   `json:"requesterId"`
	IsAdmin     bool    `json:"isAdmin"`
	Status      *string `json:"status,omitempty"`
}

// GetHallScheduleRequest запрос на получение расписания зала
type GetHallScheduleRequest struct {
	HallID          int64   `json:"hallId"`
	Date            *string `json:"date,omitempty"`      // Конкретная дата YYYY-MM-DD
	StartDate       *string `json:"startDate,omitempty"` // Начало периода
	EndDate         *string `json:"endDate,omitempty"`   // Конец периода
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отклонённые
	EnrichUsers     bool    `json:"-"`                         // Подтянуть имена из справочника (админ-листинг)
}

// RejectBookingRequest запрос на отклонение бронирования
type RejectBookingRequest struct {
	AdminID int64  `json:"adminId"`
	Remarks string `json:"remarks"`
}

// CancelBookingRequest запрос на отмену/удаление бронирования
type CancelBookingRequest struct {
	RequesterID int64 `json:"requesterId"`
	IsAdmin     bool  `json:"isAdmin"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	HallID      int64   `json:"hallId"`
	UserID      int64   `json:"userId"`
	Date        string  `json:"date"`      // "2026-03-10"
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "10:00"
	Purpose     string  `json:"purpose"`
	MeetingLink *string `json:"meetingLink,omitempty"`
	Status      string  `json:"status"`
	Remarks     *string `json:"remarks,omitempty"`

	// Данные справочника (только в обогащённых админ-листингах)
	UserName    *string `json:"userName,omitempty"`
	SectionName *string `json:"sectionName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		HallID:      b.HallID,
		UserID:      b.UserID,
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Purpose:     b.Purpose,
		MeetingLink: b.MeetingLink,
		Status:      string(b.Status),
		Remarks:     b.Remarks,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
