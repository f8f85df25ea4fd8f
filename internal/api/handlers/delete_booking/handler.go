package delete_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Ogiltigt ID"
	msgUnauthorized     = "Du måste vara inloggad"
	msgNotFound         = "Bokning hittades inte"
	msgForbidden        = "Åtkomst nekad"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings?id= и DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings - Missing principal")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := handlers.ResourceID(r)

	err := h.service.Delete(r.Context(), principal, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidID):
			h.logger.Warn("DELETE /bookings - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings - Access denied: booking_id=%s, user_id=%s", bookingID, principal.ID())
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /bookings - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings - Booking deleted successfully: booking_id=%s, user_id=%s",
		bookingID, principal.ID())
	handlers.RespondOK(w)
}
