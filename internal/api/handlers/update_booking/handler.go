package update_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Ogiltig begäran"
	msgMissingID          = "ID krävs (?id= eller i body)"
	msgUnauthorized       = "Du måste vara inloggad"
	msgNotFound           = "Bokning hittades inte"
	msgForbidden          = "Åtkomst nekad"
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

// Handle PUT /api/v1/bookings?id= и PUT /api/v1/bookings/{id}
// id также может прийти в теле запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings - Missing principal")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bookingID := handlers.ResourceID(r)
	if bookingID == "" {
		bookingID = strings.TrimSpace(req.ID)
	}
	if bookingID == "" {
		h.logger.Warn("PUT /bookings - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	booking, err := h.service.Update(r.Context(), principal, bookingID, req.ToServiceRequest())
	if err != nil {
		var validationErr *bookings.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /bookings - Validation failed: booking_id=%s, field=%s, error=%s",
				bookingID, validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PUT /bookings - Access denied: booking_id=%s, user_id=%s", bookingID, principal.ID())
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /bookings - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings - Booking updated successfully: booking_id=%s, user_id=%s",
		bookingID, principal.ID())
	handlers.RespondJSON(w, http.StatusOK, booking)
}
