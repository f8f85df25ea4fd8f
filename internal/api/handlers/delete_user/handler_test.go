package delete_user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/heal-booking-service/internal/service/users"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

type fakeService struct {
	gotID string
	err   error
}

func (f *fakeService) Delete(_ context.Context, rawID string) error {
	f.gotID = rawID
	return f.err
}

func serve(svc UserService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodDelete, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "/api/v1/users?id=u-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "u-1", svc.gotID)

	w = serve(&fakeService{}, "/api/v1/users")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"id is required as query ?id="}`, w.Body.String())

	w = serve(&fakeService{err: users.ErrUserNotFound}, "/api/v1/users?id=u-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())

	w = serve(&fakeService{err: errors.New("db down")}, "/api/v1/users?id=u-1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
