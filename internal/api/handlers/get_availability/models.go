package get_availability

import (
	"time"

	"github.com/vecindad/VCN-ReservationService/internal/domain"
	getAvailability "github.com/vecindad/VCN-ReservationService/internal/usecase/get_availability"
)

// SlotResponse занятость одной группы бронирований
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Occupied  int    `json:"occupied"`
	Capacity  int    `json:"capacity"`
}

// AvailabilityResponse занятость объекта на день
type AvailabilityResponse struct {
	Facility string         `json:"facility"`
	Date     string         `json:"date"`
	Capacity int            `json:"capacity"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.Format(time.RFC3339),
			EndTime:   slot.EndTime.Format(time.RFC3339),
			Occupied:  slot.Occupied,
			Capacity:  slot.Capacity,
		}
	}

	return &AvailabilityResponse{
		Facility: resp.FacilityName,
		Date:     resp.Date.Format(domain.DateFormat),
		Capacity: resp.Capacity,
		Slots:    slots,
	}
}
