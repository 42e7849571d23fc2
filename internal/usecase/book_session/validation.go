package book_session

import (
	"fmt"
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	// Для платной сессии пакет обязателен; для бесплатной - опционален
	if !req.IsFree && req.ClientPackID == nil {
		return fmt.Errorf("%w: clientPackId is required for a paid session", ErrInvalidInput)
	}
	if req.ClientPackID != nil && *req.ClientPackID <= 0 {
		return fmt.Errorf("%w: clientPackId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Hour.Valid() || !domain.IsBookableHour(req.Hour.Int()) {
		return ErrInvalidHour
	}

	if req.Location != nil && len(*req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location too long", ErrInvalidInput)
	}

	return nil
}

// validateSlotTime проверяет, что слот ещё можно бронировать:
// дата не в прошлом и до начала слота осталось не меньше часа
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

// packEligibilityError конвертирует причину непригодности пакета
// в конкретную ошибку usecase
func packEligibilityError(reason domain.EligibilityReason) error {
	switch reason {
	case domain.ReasonEligible:
		return nil
	case domain.ReasonInactive:
		return ErrPackInactive
	case domain.ReasonExpired:
		return ErrPackExpired
	case domain.ReasonExhausted:
		return ErrPackExhausted
	case domain.ReasonWrongState:
		return ErrPackWrongState
	default:
		return fmt.Errorf("%w: unknown eligibility reason %q", ErrInternal, reason)
	}
}

// slotOccupied проверяет занятость слота (тренер, дата, час)
// Повторяет проверку шага 2 расчёта доступности в момент коммита:
// закрывает гонку между "слот был свободен при показе" и "слот заняли тем временем".
// Отменённые сессии слот не держат
func slotOccupied(sessions []*domain.Session, date time.Time, hour types.HourOfDay) bool {
	key := domain.SlotKey(date, hour.Int())
	for _, s := range sessions {
		if s.IsActive() && s.SlotKey() == key {
			return true
		}
	}
	return false
}
