package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
)

const pingTimeout = 3 * time.Second

type Handler struct {
	db     DBPinger
	logger Logger
}

func NewHandler(db DBPinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /api/v1/health
// Query params: db=1 проверяет соединение с базой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("db") != "1" {
		handlers.RespondJSON(w, http.StatusOK, HealthResponse{OK: true})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("GET /health - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, HealthResponse{OK: false, DB: dbError})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{OK: true, DB: dbConnected})
}
