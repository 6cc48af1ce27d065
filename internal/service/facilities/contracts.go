package facilities

import (
	"context"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// FacilityRepository интерфейс реестра объектов
type FacilityRepository interface {
	List(ctx context.Context) ([]*domain.Facility, error)
	GetByName(ctx context.Context, name string) (*domain.Facility, error)
	Update(ctx context.Context, id int64, price float64, capacity int) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
