package list_my_bookings

import (
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/api/middleware"
)

const msgUnauthorized = "Du måste vara inloggad"

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

// Handle GET /api/v1/bookings/mine
// Query params: page, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Пользователь из контекста (через middleware Auth)
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/mine - Missing principal")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	page := handlers.QueryInt(r, "page")
	limit := handlers.QueryInt(r, "limit")

	result, err := h.service.ListMine(r.Context(), principal, page, limit)
	if err != nil {
		h.logger.Error("GET /bookings/mine - Failed to get bookings: user_id=%s, error=%v", principal.ID(), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/mine - Bookings retrieved successfully: user_id=%s, count=%d",
		principal.ID(), len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
