package update_heal

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/heals"
	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
	"github.com/m04kA/heal-booking-service/pkg/ptr"
)

const (
	msgInvalidJSON = "Invalid JSON"
	msgNotFound    = "Heal not found"
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

// Handle PUT /api/v1/heals?id=
// id также может прийти в теле запроса, он важнее query
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHealRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /heals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJSON)
		return
	}

	// id из тела имеет приоритет над query
	healID := strings.TrimSpace(ptr.Deref(req.ID))
	if healID == "" {
		healID = handlers.ResourceID(r)
	}

	heal, err := h.service.Update(r.Context(), healID, &req)
	if err != nil {
		var validationErr *heals.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /heals - Validation failed: heal_id=%q, field=%s, error=%s",
				healID, validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, heals.ErrHealNotFound):
			h.logger.Warn("PUT /heals - Heal not found: heal_id=%s", healID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /heals - Failed to update heal: heal_id=%s, error=%v", healID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /heals - Heal updated successfully: heal_id=%s", healID)
	handlers.RespondJSON(w, http.StatusOK, heal)
}
