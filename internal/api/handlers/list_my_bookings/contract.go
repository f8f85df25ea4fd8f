package list_my_bookings

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/bookings"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListMine(ctx context.Context, principal bookings.Principal, page, limit int) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
