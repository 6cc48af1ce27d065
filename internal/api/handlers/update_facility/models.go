package update_facility

import (
	"github.com/vecindad/VCN-ReservationService/internal/domain"
	"github.com/vecindad/VCN-ReservationService/internal/service/facilities/models"
)

// UpdateFacilityRequest HTTP request model
type UpdateFacilityRequest struct {
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateFacilityRequest) ToServiceRequest(facilityID int64, role domain.Role) *models.UpdateFacilityRequest {
	return &models.UpdateFacilityRequest{
		FacilityID: facilityID,
		Price:      r.Price,
		Capacity:   r.Capacity,
		Role:       role,
	}
}
