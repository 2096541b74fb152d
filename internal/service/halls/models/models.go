package models

import (
	"time"

	"github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"
)

// CreateHallRequest запрос на создание зала
type CreateHallRequest struct {
	AdminID     int64    `json:"adminId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "conference" | "mini"
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
}

// UpdateHallRequest запрос на обновление зала.
// Деактивация выполняется через IsActive=false - залы не удаляются.
type UpdateHallRequest struct {
	AdminID     int64    `json:"adminId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
	IsActive    bool     `json:"isActive"`
}

// HallResponse ответ с данными зала
type HallResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	Facilities  []string  `json:"facilities"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HallListResponse ответ со списком залов
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

// FromDomainHall конвертирует domain модель в DTO
func FromDomainHall(h *domain.Hall) *HallResponse {
	if h == nil {
		return nil
	}

	facilities := h.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return &HallResponse{
		ID:          h.ID,
		Name:        h.Name,
		Type:        string(h.Type),
		Capacity:    h.Capacity,
		Description: h.Description,
		Facilities:  facilities,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// FromDomainHallList конвертирует список domain моделей в DTO
func FromDomainHallList(halls []*domain.Hall) *HallListResponse {
	resp := &HallListResponse{
		Halls: make([]HallResponse, 0, len(halls)),
	}
	for _, hall := range halls {
		if hallResp := FromDomainHall(hall); hallResp != nil {
			resp.Halls = append(resp.Halls, *hallResp)
		}
	}
	return resp
}
