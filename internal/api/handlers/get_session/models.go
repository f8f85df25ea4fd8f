package get_session

import "github.com/m04kA/heal-booking-service/internal/api/middleware"

// SessionResponse текущий пользователь
type SessionResponse struct {
	User SessionUser `json:"user"`
}

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// FromPrincipal конвертирует пользователя запроса в HTTP response
func FromPrincipal(p middleware.Principal) *SessionResponse {
	return &SessionResponse{
		User: SessionUser{
			ID:    p.ID().String(),
			Email: p.Email(),
			Name:  p.Name(),
			Role:  string(p.Role()),
		},
	}
}
