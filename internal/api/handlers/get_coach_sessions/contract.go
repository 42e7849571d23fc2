package get_coach_sessions

import (
	"context"

	"github.com/younesAM01/StayFit-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	GetCoachSessions(ctx context.Context, req *models.GetCoachSessionsRequest) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
