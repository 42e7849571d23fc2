package cancel_session

import (
	"context"

	"github.com/younesAM01/StayFit-BookingService/internal/service/sessions/models"
)

type SessionService interface {
	Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
