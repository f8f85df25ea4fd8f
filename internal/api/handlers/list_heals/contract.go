package list_heals

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
)

type HealService interface {
	List(ctx context.Context) ([]models.HealResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
