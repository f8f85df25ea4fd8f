package get_session

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/infra/session"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

func TestHandle(t *testing.T) {
	id := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	r = r.WithContext(middleware.WithPrincipal(r.Context(), session.New(id, "anna@example.se", "Anna Berg", domain.RoleAdmin)))
	w := httptest.NewRecorder()

	NewHandler(logger.Nop()).Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"user":{"id":%q,"email":"anna@example.se","name":"Anna Berg","role":"admin"}}`, id),
		w.Body.String())
}

func TestHandle_NoPrincipal(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
