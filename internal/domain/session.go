package domain

import (
	"time"

	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// SessionStatus represents the status of a coaching session
type SessionStatus string

const (
	StatusPending   SessionStatus = "pending"
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Session represents a booked coaching session in the system
type Session struct {
	ID              int64
	CoachID         int64
	ClientID        int64
	ClientPackID    *int64 // ID пакета, с которого списано занятие (nil для бесплатной сессии без пакета)
	SessionDate     time.Time
	HourOfDay       types.HourOfDay
	DurationMinutes int
	Location        *string
	Status          SessionStatus
	IsFree          bool // Бесплатная сессия не списывает занятие с пакета

	// Denormalized data for history
	CoachName  *string
	ClientName *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the session occupies its slot
// (any non-cancelled session blocks the slot for rebooking)
func (s *Session) IsActive() bool {
	return s.Status != StatusCancelled
}

// CanBeCancelled returns true if the session can be cancelled
func (s *Session) CanBeCancelled() bool {
	return s.Status == StatusPending || s.Status == StatusScheduled
}

// CanBeCompleted returns true if the session can be marked completed
func (s *Session) CanBeCompleted() bool {
	return s.Status == StatusScheduled
}

// CanBeRescheduled returns true if the session can be moved to another slot
func (s *Session) CanBeRescheduled() bool {
	return s.Status == StatusPending || s.Status == StatusScheduled
}

// IsTerminal returns true if the session reached a terminal status
func (s *Session) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}

// HasConsumedCredit сообщает, держит ли сессия списанное с пакета занятие
// Бесплатные сессии занятий не списывают; у отменённых занятие уже возвращено
func (s *Session) HasConsumedCredit() bool {
	return !s.IsFree && s.ClientPackID != nil && s.Status != StatusCancelled
}

// SlotKey возвращает каноничный ключ слота, занятого сессией
func (s *Session) SlotKey() string {
	return SlotKey(s.SessionDate, s.HourOfDay.Int())
}

// CanTransition проверяет допустимость перехода статуса
// Допустимые переходы:
//
//	pending   -> scheduled | cancelled
//	scheduled -> completed | cancelled
//
// Из терминальных статусов (completed, cancelled) переходов нет
func CanTransition(from, to SessionStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusScheduled || to == StatusCancelled
	case StatusScheduled:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// CoachSessionsFilter фильтр для получения сессий тренера
type CoachSessionsFilter struct {
	CoachID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *SessionStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые сессии
}
