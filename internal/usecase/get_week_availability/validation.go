package get_week_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.WeekAnchor.IsZero() {
		return fmt.Errorf("%w: weekAnchor is required", ErrInvalidInput)
	}

	return nil
}
