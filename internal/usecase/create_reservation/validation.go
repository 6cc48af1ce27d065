package create_reservation

import "fmt"

// validateRequest проверяет структурную корректность запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.FacilityName == "" {
		return fmt.Errorf("%w: facility name is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}

	// Полуоткрытый интервал [start, end) обязан быть непустым
	if !req.StartTime.Before(req.EndTime) {
		return ErrInvalidRange
	}

	return nil
}
