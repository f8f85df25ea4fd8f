package update_user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/users"
	"github.com/m04kA/heal-booking-service/pkg/ptr"
)

const (
	msgInvalidJSON = "Invalid JSON"
	msgMissingID   = "id is required (query ?id= or in body)"
	msgNotFound    = "User not found"
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

// Handle PUT /api/v1/users?id=
// id также может прийти в теле запроса, он важнее query
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJSON)
		return
	}

	userID := strings.TrimSpace(ptr.Deref(req.ID))
	if userID == "" {
		userID = handlers.ResourceID(r)
	}
	if userID == "" {
		h.logger.Warn("PUT /users - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	user, err := h.service.Update(r.Context(), userID, req.ToServiceRequest())
	if err != nil {
		var validationErr *users.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /users - Validation failed: user_id=%s, field=%s, error=%s",
				userID, validationErr.Field, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /users - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /users - Failed to update user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users - User updated successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
