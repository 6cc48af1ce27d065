package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	facilityRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/facility"
)

// UseCase проекция занятости объекта на календарный день.
// Только чтение; не используется движком допуска
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location задаёт таймзону, в которой считается "календарный день"
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		location:        location,
		logger:          logger,
	}
}

// Execute возвращает занятость объекта на указанный день.
// День без бронирований - пустой список слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%s, date=%s",
		req.FacilityName, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	facility, err := uc.facilityRepo.GetByName(ctx, req.FacilityName)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility %q not found", req.FacilityName)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility %q: %v", req.FacilityName, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// Границы календарного дня в опорной таймзоне
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Репозиторий возвращает бронирования упорядоченными по началу,
	// группировка опирается на этот порядок
	reservations, err := uc.reservationRepo.GetActiveByFacilityBetween(ctx, facility.Name, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	slots := groupByStart(reservations, facility.Capacity)

	uc.logger.Info("GetAvailability: facility=%s, date=%s, %d reservations in %d slots",
		facility.Name, req.Date.Format(domain.DateFormat), len(reservations), len(slots))

	return &Response{
		FacilityName: facility.Name,
		Date:         dayStart,
		Capacity:     facility.Capacity,
		Slots:        slots,
	}, nil
}
