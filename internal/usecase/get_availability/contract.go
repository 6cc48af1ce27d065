package get_availability

import (
	"context"
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetActiveByFacilityBetween(ctx context.Context, facilityName string, dayStart, dayEnd time.Time) ([]*domain.Reservation, error)
}

// FacilityRepository интерфейс реестра объектов
type FacilityRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
