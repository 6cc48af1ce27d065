package get_availability

import "fmt"

// validateRequest проверяет структурную корректность запроса
func validateRequest(req *Request) error {
	if req.FacilityName == "" {
		return fmt.Errorf("%w: facility name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
