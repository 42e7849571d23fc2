package book_session

import (
	"context"
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	ListByCoachAndWeek(ctx context.Context, coachID int64, weekStart time.Time) ([]*domain.Session, error)
}

// ClientPackRepository интерфейс репозитория пакетов занятий
type ClientPackRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ClientPack, error)
	Consume(ctx context.Context, id int64) error
}

// RosterServiceClient интерфейс клиента RosterService
type RosterServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*rosterservice.Coach, error)
	GetClient(ctx context.Context, clientID int64) (*rosterservice.ClientAccount, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
