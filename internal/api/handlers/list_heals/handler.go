package list_heals

import (
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/heals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /heals - Failed to list heals: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /heals - Heals retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
