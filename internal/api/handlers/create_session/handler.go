package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/service/users"
	"github.com/m04kA/heal-booking-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "Ogiltig begäran"
	msgInvalidCredentials = "Fel e-post eller lösenord"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	email := domain.NormalizeEmail(req.Email)

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			h.logger.Warn("POST /session - Invalid credentials: email=%s", email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /session - Failed to sign in: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session - Signed in successfully: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
