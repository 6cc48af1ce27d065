package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a committed booking of one facility
// for one time interval by one user
type Reservation struct {
	ID           int64
	UserID       int64
	FacilityName string
	StartTime    time.Time
	EndTime      time.Time

	// Цена фиксируется в момент бронирования и не пересчитывается
	// при последующих изменениях цены объекта
	Price float64

	Status    ReservationStatus
	CreatedAt time.Time
}

// IsActive возвращает true, если бронирование учитывается при подсчёте занятости
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsOwnedBy возвращает true, если бронирование принадлежит указанному пользователю
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	FacilityName    *string // Фильтр по объекту (опционально)
	UserID          *int64  // Фильтр по владельцу (опционально)
	IncludeInactive bool    // Включать ли отменённые бронирования
}
