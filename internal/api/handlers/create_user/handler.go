package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/users"
	"github.com/m04kA/heal-booking-service/internal/service/users/models"
)

const (
	msgInvalidJSON = "Invalid JSON"
	msgEmailExists = "email already in use"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJSON)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var validationErr *users.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /users - Validation failed: field=%s, error=%s", validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, users.ErrEmailExists):
			h.logger.Warn("POST /users - Email already in use")
			handlers.RespondConflict(w, msgEmailExists)

		default:
			h.logger.Error("POST /users - Failed to create user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
