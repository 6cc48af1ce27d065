package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	facilityRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/vecindad/VCN-ReservationService/internal/infra/storage/reservation"
)

// UseCase движок допуска бронирований.
// Решает ADMIT / REJECT для каждого запроса и атомарно фиксирует
// принятое бронирование. Единственная точка записи в таблицу reservations
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	txManager       TransactionManager
	notifier        Notifier
	priceTaxFactor  float64
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	notifier Notifier,
	priceTaxFactor float64,
	logger Logger,
) *UseCase {
	if priceTaxFactor < 1.0 {
		priceTaxFactor = 1.0
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		txManager:       txManager,
		notifier:        notifier,
		priceTaxFactor:  priceTaxFactor,
		logger:          logger,
	}
}

// Execute выполняет допуск бронирования.
//
// Дисциплина сериализации: все проверки и вставка выполняются в одной
// транзакции под блокировкой строки объекта (FOR UPDATE). Две конкурентные
// попытки на один объект выстраиваются в очередь, поэтому проверка
// вместимости и вставка видят один и тот же консистентный снимок -
// вместимость не может быть превышена гонкой. Блокировка держится только
// на время проверок и вставки; уведомления уходят после коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, facility=%s, start=%s, end=%s",
		req.UserID, req.FacilityName,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Структурная валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Объект с блокировкой строки - сериализует допуск по этому объекту
		facility, err := uc.facilityRepo.GetByNameForUpdate(txCtx, req.FacilityName)
		if err != nil {
			if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
				uc.logger.Warn("CreateReservation: facility %q not found", req.FacilityName)
				return ErrFacilityNotFound
			}
			uc.logger.Error("CreateReservation: failed to get facility %q: %v", req.FacilityName, err)
			return fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
		}

		// 3. Проверка дубликата: у пользователя не может быть двух
		// пересекающихся бронирований одного объекта
		hasDuplicate, err := uc.reservationRepo.ExistsActiveOverlappingForUser(
			txCtx, facility.Name, req.UserID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateReservation: duplicate check failed: %v", err)
			return fmt.Errorf("%w: duplicate check failed: %v", ErrInternal, err)
		}
		if hasDuplicate {
			uc.logger.Warn("CreateReservation: duplicate reservation, user=%d, facility=%s",
				req.UserID, facility.Name)
			return ErrDuplicateReservation
		}

		// 4. Проверка вместимости по всем владельцам на запрошенном интервале
		occupied, err := uc.reservationRepo.CountActiveOverlapping(
			txCtx, facility.Name, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateReservation: capacity check failed: %v", err)
			return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
		}
		if !facility.HasSpotsFor(occupied) {
			uc.logger.Warn("CreateReservation: capacity exceeded, facility=%s, %d/%d spots taken",
				facility.Name, occupied, facility.Capacity)
			return &CapacityError{Occupied: occupied, Capacity: facility.Capacity}
		}

		uc.logger.Info("CreateReservation: facility=%s, %d/%d spots taken, admitting",
			facility.Name, occupied, facility.Capacity)

		// 5. Цена фиксируется по текущей цене объекта с учётом надбавки
		price := facility.Price * uc.priceTaxFactor

		// 6. Фиксация бронирования
		res := &domain.Reservation{
			UserID:       req.UserID,
			FacilityName: facility.Name,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Price:        price,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			// Exclusion constraint сработал на конкурентной вставке:
			// для вызывающего это тот же конфликт дубликата
			if errors.Is(err, reservationRepo.ErrOverlapConflict) {
				uc.logger.Warn("CreateReservation: store rejected overlapping insert, user=%d, facility=%s",
					req.UserID, facility.Name)
				return ErrDuplicateReservation
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: admitted reservation id=%d, user=%d, facility=%s, price=%.2f",
		result.ID, result.UserID, result.FacilityName, result.Price)

	// Уведомление после коммита; его судьба не влияет на бронирование
	uc.notifier.ReservationCreated(result)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		FacilityName: result.FacilityName,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Price:        result.Price,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}
