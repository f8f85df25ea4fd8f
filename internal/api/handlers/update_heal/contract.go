package update_heal

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
)

type HealService interface {
	Update(ctx context.Context, rawID string, req *models.UpdateHealRequest) (*models.HealResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
