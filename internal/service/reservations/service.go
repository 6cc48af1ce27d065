package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	reservationRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/reservation"
	"github.com/vecindad/VCN-ReservationService/internal/service/reservations/models"
	"github.com/vecindad/VCN-ReservationService/pkg/ptr"
)

// Service операции чтения и отмены бронирований.
// Создание бронирований живёт отдельно - в движке допуска
// (usecase/create_reservation)
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// ListUserReservations возвращает бронирования пользователя,
// упорядоченные по началу (сначала новые)
func (s *Service) ListUserReservations(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("ListUserReservations: fetching reservations for user=%d", userID)

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUserReservations: fetched %d reservations for user=%d", len(reservations), userID)
	return models.FromDomainReservationList(reservations), nil
}

// ListAll возвращает все бронирования для ролей с полным обзором,
// для остальных - только собственные
func (s *Service) ListAll(ctx context.Context, userID int64, role domain.Role) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{IncludeInactive: true}
	if !role.CanViewAllReservations() {
		filter.UserID = ptr.Ptr(userID)
	}

	s.logger.Info("ListAll: fetching reservations, user=%d, role=%s, allUsers=%t",
		userID, role, filter.UserID == nil)

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование.
// Разрешено владельцу бронирования и ролям с правом отмены чужих
func (s *Service) Cancel(ctx context.Context, id int64, requesterID int64, role domain.Role) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, requesterID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.IsOwnedBy(requesterID) && !role.CanCancelAnyReservation() {
		s.logger.Warn("Cancel: access denied, reservation id=%d, owner=%d, requester=%d",
			id, res.UserID, requesterID)
		return ErrAccessDenied
	}

	if !res.IsActive() {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled by user=%d", id, requesterID)

	res.Status = domain.StatusCancelled
	s.notifier.ReservationCancelled(res)

	return nil
}
