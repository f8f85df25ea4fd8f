package get_heal

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
)

type HealService interface {
	GetByID(ctx context.Context, rawID string) (*models.HealResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
