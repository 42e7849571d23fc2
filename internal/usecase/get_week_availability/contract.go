package get_week_availability

import (
	"context"
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	ListByCoachAndWeek(ctx context.Context, coachID int64, weekStart time.Time) ([]*domain.Session, error)
}

// RosterServiceClient интерфейс клиента RosterService
type RosterServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*rosterservice.Coach, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
