package delete_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/users"
)

const (
	msgMissingID = "id is required as query ?id="
	msgNotFound  = "User not found"
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

// Handle DELETE /api/v1/users?id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := handlers.ResourceID(r)
	if userID == "" {
		h.logger.Warn("DELETE /users - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	err := h.service.Delete(r.Context(), userID)
	if err != nil {
		var validationErr *users.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("DELETE /users - Invalid user ID: %q", userID)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /users - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /users - Failed to delete user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users - User deleted successfully: user_id=%s", userID)
	handlers.RespondOK(w)
}
