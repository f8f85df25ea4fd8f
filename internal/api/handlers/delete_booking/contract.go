package delete_booking

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/bookings"
)

type BookingService interface {
	Delete(ctx context.Context, principal bookings.Principal, rawID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
