package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	facilityRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/facility"
	"github.com/vecindad/VCN-ReservationService/internal/service/facilities/models"
)

// Service реестр объектов бронирования.
// Единственный источник истины о цене и вместимости объектов
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// List возвращает все объекты в стабильном порядке (по имени)
func (s *Service) List(ctx context.Context) (*models.FacilityListResponse, error) {
	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacilityList(facilities), nil
}

// GetByName возвращает объект по имени
func (s *Service) GetByName(ctx context.Context, name string) (*models.FacilityResponse, error) {
	facility, err := s.facilityRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByName: repository error for %q: %v", name, err)
		return nil, fmt.Errorf("%w: GetByName - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// Update обновляет цену и вместимость объекта. Требует права управления объектами.
// Существующие бронирования сохраняют зафиксированную при создании цену
func (s *Service) Update(ctx context.Context, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Update: facility id=%d, price=%.2f, capacity=%d", req.FacilityID, req.Price, req.Capacity)

	if !req.Role.CanManageFacilities() {
		s.logger.Warn("Update: access denied for role=%s, facility id=%d", req.Role, req.FacilityID)
		return nil, ErrAccessDenied
	}

	if req.Price < domain.MinFacilityPrice {
		s.logger.Warn("Update: invalid price %.2f for facility id=%d", req.Price, req.FacilityID)
		return nil, fmt.Errorf("%w: price must be >= %v", ErrInvalidInput, domain.MinFacilityPrice)
	}
	if req.Capacity < domain.MinFacilityCapacity {
		s.logger.Warn("Update: invalid capacity %d for facility id=%d", req.Capacity, req.FacilityID)
		return nil, fmt.Errorf("%w: capacity must be >= %d", ErrInvalidInput, domain.MinFacilityCapacity)
	}

	facility, err := s.facilityRepo.Update(ctx, req.FacilityID, req.Price, req.Capacity)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: facility id=%d updated, price=%.2f, capacity=%d",
		facility.ID, facility.Price, facility.Capacity)
	return models.FromDomainFacility(facility), nil
}
