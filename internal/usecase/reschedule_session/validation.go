package reschedule_session

import (
	"fmt"
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if !req.NewHour.Valid() || !domain.IsBookableHour(req.NewHour.Int()) {
		return ErrInvalidHour
	}

	return nil
}

// validateSlotTime проверяет, что новый слот ещё можно бронировать
func validateSlotTime(date time.Time, hour types.HourOfDay, now time.Time) error {
	if domain.DateInPast(date, now) {
		return ErrInvalidDate
	}

	if domain.WithinBookingCutoff(date, hour.Int(), now) {
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrTooLateToBook, domain.BookingCutoffMinutes)
	}

	return nil
}

// slotOccupied проверяет занятость нового слота, игнорируя саму переносимую сессию:
// перенос на тот же слот - no-op, а не конфликт
func slotOccupied(sessions []*domain.Session, date time.Time, hour types.HourOfDay, excludeID int64) bool {
	key := domain.SlotKey(date, hour.Int())
	for _, s := range sessions {
		if s.ID == excludeID {
			continue
		}
		if s.IsActive() && s.SlotKey() == key {
			return true
		}
	}
	return false
}
