package get_facility

import (
	"context"

	"github.com/vecindad/VCN-ReservationService/internal/service/facilities/models"
)

type FacilityService interface {
	GetByName(ctx context.Context, name string) (*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
