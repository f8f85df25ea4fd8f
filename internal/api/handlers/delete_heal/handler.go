package delete_heal

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/heals"
)

const (
	msgMissingID = "id is required as query ?id="
	msgNotFound  = "Heal not found"
	msgInUse     = "heal has bookings"
)

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

// Handle DELETE /api/v1/heals?id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	healID := handlers.ResourceID(r)
	if healID == "" {
		h.logger.Warn("DELETE /heals - Missing heal ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	err := h.service.Delete(r.Context(), healID)
	if err != nil {
		var validationErr *heals.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("DELETE /heals - Invalid heal ID: %q", healID)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, heals.ErrHealNotFound):
			h.logger.Warn("DELETE /heals - Heal not found: heal_id=%s", healID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, heals.ErrHealInUse):
			h.logger.Warn("DELETE /heals - Heal has bookings: heal_id=%s", healID)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /heals - Failed to delete heal: heal_id=%s, error=%v", healID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /heals - Heal deleted successfully: heal_id=%s", healID)
	handlers.RespondOK(w)
}
