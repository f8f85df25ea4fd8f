package list_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	listSlots "github.com/m04kA/heal-booking-service/internal/usecase/list_slots"
)

const (
	msgInvalidDate = "Ogiltigt datum"
	msgDateInPast  = "Datum kan inte vara i det förflutna"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &listSlots.Request{Date: dateStr})
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, listSlots.ErrDateInPast):
			h.logger.Warn("GET /slots - Date in past: %q", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("GET /slots - Failed to list slots: date=%q, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, count=%d", response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
