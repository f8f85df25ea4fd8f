package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	createBooking "github.com/m04kA/heal-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Ogiltig begäran"
	msgHealNotFound       = "Behandlingen hittades inte"
	msgCreateFailed       = "Kunde inte skapa bokningen"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createBooking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: field=%s, error=%s", validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, createBooking.ErrHealNotFound):
			h.logger.Warn("POST /bookings - Heal not found: heal_id=%s", req.HealID)
			handlers.RespondNotFound(w, msgHealNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: heal_id=%s, error=%v", req.HealID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, heal_id=%s",
		result.ID, req.HealID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
