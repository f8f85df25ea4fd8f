package update_booking

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/bookings"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Update(
		ctx context.Context,
		principal bookings.Principal,
		rawID string,
		req *models.UpdateBookingRequest,
	) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
