package create_heal

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/heals"
)

const (
	msgInvalidJSON = "Invalid JSON"
	msgSlugExists  = "slug already exists"
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

// Handle POST /api/v1/heals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateHealRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /heals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJSON)
		return
	}

	heal, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		var validationErr *heals.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /heals - Validation failed: field=%s, error=%s", validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, heals.ErrSlugExists):
			h.logger.Warn("POST /heals - Slug already exists: title=%q", req.Title)
			handlers.RespondConflict(w, msgSlugExists)

		default:
			h.logger.Error("POST /heals - Failed to create heal: title=%q, error=%v", req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /heals - Heal created successfully: heal_id=%s, slug=%s", heal.ID, heal.Slug)
	handlers.RespondJSON(w, http.StatusCreated, heal)
}
