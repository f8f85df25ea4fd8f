package get_heal

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/heals"
)

const msgNotFound = "Heal not found"

type Handler struct {
	service HealService
	logger  Logger
}

func NewHandler(service HealService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/heals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	healID := handlers.ResourceID(r)

	heal, err := h.service.GetByID(r.Context(), healID)
	if err != nil {
		var validationErr *heals.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("GET /heals/{id} - Invalid heal ID: %q", healID)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, heals.ErrHealNotFound):
			h.logger.Warn("GET /heals/{id} - Heal not found: heal_id=%s", healID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /heals/{id} - Failed to get heal: heal_id=%s, error=%v", healID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /heals/{id} - Heal retrieved successfully: heal_id=%s", healID)
	handlers.RespondJSON(w, http.StatusOK, heal)
}
