package create_session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/heal-booking-service/internal/service/users"
	"github.com/m04kA/heal-booking-service/internal/service/users/models"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

type fakeService struct {
	resp *models.LoginResponse
	err  error
}

func (f *fakeService) Login(context.Context, *models.LoginRequest) (*models.LoginResponse, error) {
	return f.resp, f.err
}

func serve(svc UserService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.LoginResponse{Token: "tok", User: models.SessionUser{ID: "u-1", Role: "user"}}}
	w := serve(svc, `{"email":"anna@example.se","password":"hemligt1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)

	w = serve(&fakeService{err: users.ErrInvalidCredentials}, `{"email":"anna@example.se","password":"fel"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Fel e-post eller lösenord"}`, w.Body.String())

	w = serve(&fakeService{err: errors.New("db down")}, `{"email":"anna@example.se","password":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(&fakeService{}, ``)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
