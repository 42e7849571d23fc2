package get_client_packs

import (
	"context"

	"github.com/younesAM01/StayFit-BookingService/internal/service/packs/models"
)

type PackService interface {
	GetClientPacks(ctx context.Context, clientID int64, onlyActive bool) (*models.PackListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
