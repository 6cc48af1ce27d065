package models

import (
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
)

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Facility  string  `json:"facility"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain-модель в ответ сервиса
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		UserID:    res.UserID,
		Facility:  res.FacilityName,
		StartTime: res.StartTime.Format(time.RFC3339),
		EndTime:   res.EndTime.Format(time.RFC3339),
		Price:     res.Price,
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain-моделей в ответ сервиса
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		items[i] = *FromDomainReservation(res)
	}
	return &ReservationListResponse{Reservations: items}
}
