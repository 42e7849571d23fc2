package packs

import (
	"context"
	"time"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
)

// ClientPackRepository интерфейс репозитория пакетов занятий
type ClientPackRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ClientPack, error)
	GetByClientID(ctx context.Context, clientID int64, onlyActive bool) ([]*domain.ClientPack, error)
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
