package create_reservation

import (
	"fmt"
	"time"

	createReservation "github.com/vecindad/VCN-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Facility  string `json:"facility"`
	StartTime string `json:"startTime"` // RFC3339, например "2026-01-20T10:00:00+01:00"
	EndTime   string `json:"endTime"`   // RFC3339
}

// ReservationResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse end time: %w", err)
	}

	return &createReservation.Request{
		UserID:       userID,
		FacilityName: r.Facility,
		StartTime:    startTime,
		EndTime:      endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		Facility:  resp.FacilityName,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Price:     resp.Price,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
