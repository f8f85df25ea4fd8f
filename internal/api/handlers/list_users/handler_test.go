package list_users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/heal-booking-service/internal/service/users/models"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

type fakeService struct {
	resp []models.UserResponse
	err  error
}

func (f *fakeService) List(context.Context) ([]models.UserResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{resp: []models.UserResponse{{ID: "u-1", Email: "anna@example.se", Role: "user"}}}, logger.Nop()).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"anna@example.se"`)
	assert.NotContains(t, w.Body.String(), "password")

	w = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, logger.Nop()).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
