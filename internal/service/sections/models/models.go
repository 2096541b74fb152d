package models

import "github.com/aryanakulan-rgb/conferencehall-allocation/internal/domain"

// CreateSectionRequest запрос на создание секции
type CreateSectionRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SectionResponse ответ с данными секции
type SectionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SectionListResponse ответ со списком секций
type SectionListResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// FromDomainSection конвертирует domain модель в DTO
func FromDomainSection(s *domain.Section) *SectionResponse {
	if s == nil {
		return nil
	}
	return &SectionResponse{
		ID:   s.ID,
		Name: s.Name,
		Code: s.Code,
	}
}

// FromDomainSectionList конвертирует список domain моделей в DTO
func FromDomainSectionList(sections []*domain.Section) *SectionListResponse {
	resp := &SectionListResponse{
		Sections: make([]SectionResponse, 0, len(sections)),
	}
	for _, section := range sections {
		if sectionResp := FromDomainSection(section); sectionResp != nil {
			resp.Sections = append(resp.Sections, *sectionResp)
		}
	}
	return resp
}
