package get_pack

import (
	"context"

	"github.com/younesAM01/StayFit-BookingService/internal/service/packs/models"
)

type PackService interface {
	GetByID(ctx context.Context, id int64) (*models.PackResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
