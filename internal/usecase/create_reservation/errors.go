package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidRange возвращается, когда начало интервала не раньше его конца
	ErrInvalidRange = errors.New("create_reservation: start time must be before end time")

	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("create_reservation: facility not found")

	// ErrDuplicateReservation возвращается, когда пользователь уже держит
	// пересекающееся бронирование этого объекта
	ErrDuplicateReservation = errors.New("create_reservation: user already has an overlapping reservation")

	// ErrCapacityExceeded возвращается, когда вместимость объекта исчерпана
	// на запрошенном интервале
	ErrCapacityExceeded = errors.New("create_reservation: facility capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// CapacityError несёт фактическую занятость и вместимость для сообщения
// пользователю ("10/10 мест занято"). Раскрывается в ErrCapacityExceeded
type CapacityError struct {
	Occupied int
	Capacity int
}

// Error возвращает текст ошибки с занятостью
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %d/%d spots taken", ErrCapacityExceeded.Error(), e.Occupied, e.Capacity)
}

// Unwrap позволяет errors.Is(err, ErrCapacityExceeded)
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
