package stats

import (
	"context"
	"fmt"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// Service агрегированная статистика для администратора
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// StatsResponse агрегированная статистика в ответе сервиса
type StatsResponse struct {
	TotalReservations   int64   `json:"totalReservations"`
	TotalEarnings       float64 `json:"totalEarnings"`
	MostPopularFacility string  `json:"mostPopularFacility"`
}

// GetStats возвращает агрегированную статистику по бронированиям.
// Требует права полного обзора бронирований
func (s *Service) GetStats(ctx context.Context, role domain.Role) (*StatsResponse, error) {
	if !role.CanViewAllReservations() {
		s.logger.Warn("GetStats: access denied for role=%s", role)
		return nil, ErrAccessDenied
	}

	stats, err := s.reservationRepo.GetStats(ctx)
	if err != nil {
		s.logger.Error("GetStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStats: total=%d, earnings=%.2f, popular=%q",
		stats.TotalReservations, stats.TotalEarnings, stats.MostPopularFacility)

	return &StatsResponse{
		TotalReservations:   stats.TotalReservations,
		TotalEarnings:       stats.TotalEarnings,
		MostPopularFacility: stats.MostPopularFacility,
	}, nil
}
