package create_reservation

import (
	"context"
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	CountActiveOverlapping(ctx context.Context, facilityName string, start, end time.Time) (int, error)
	ExistsActiveOverlappingForUser(ctx context.Context, facilityName string, userID int64, start, end time.Time) (bool, error)
}

// FacilityRepository интерфейс реестра объектов
type FacilityRepository interface {
	GetByNameForUpdate(ctx context.Context, name string) (*domain.Facility, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс клиента уведомлений. Вызов не должен блокировать
// и не влияет на результат бронирования
type Notifier interface {
	ReservationCreated(res *domain.Reservation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
