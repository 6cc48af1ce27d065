package models

import (
	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// UpdateFacilityRequest запрос на обновление цены и вместимости объекта
type UpdateFacilityRequest struct {
	FacilityID int64
	Price      float64
	Capacity   int
	Role       domain.Role
}

// FacilityResponse объект в ответе сервиса
type FacilityResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// FacilityListResponse список объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacility конвертирует domain-модель в ответ сервиса
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Price:       f.Price,
		Capacity:    f.Capacity,
		Icon:        f.Icon,
		Color:       f.Color,
		Description: f.Description,
	}
}

// FromDomainFacilityList конвертирует список domain-моделей в ответ сервиса
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = *FromDomainFacility(f)
	}
	return &FacilityListResponse{Facilities: items}
}
