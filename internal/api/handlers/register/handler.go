package register

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
	msgEmailExists        = "E-postadressen är redan registrerad"
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

// Handle POST /api/v1/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	email := domain.NormalizeEmail(req.Email)

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var validationErr *users.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /register - Validation failed: field=%s, error=%s", validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, users.ErrEmailExists):
			h.logger.Warn("POST /register - Email already registered: email=%s", email)
			handlers.RespondConflict(w, msgEmailExists)

		default:
			h.logger.Error("POST /register - Failed to register user: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - User registered successfully: user_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
