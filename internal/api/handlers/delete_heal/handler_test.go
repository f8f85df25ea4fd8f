package delete_heal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/heal-booking-service/internal/service/heals"
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

func serve(svc HealService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodDelete, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "/api/v1/heals?id=h-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "h-1", svc.gotID)

	w = serve(&fakeService{}, "/api/v1/heals")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"id is required as query ?id="}`, w.Body.String())

	w = serve(&fakeService{err: heals.ErrHealNotFound}, "/api/v1/heals?id=h-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Heal not found"}`, w.Body.String())

	w = serve(&fakeService{err: heals.ErrHealInUse}, "/api/v1/heals?id=h-1")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"heal has bookings"}`, w.Body.String())

	w = serve(&fakeService{err: &heals.ValidationError{Field: "id", Message: "invalid id"}}, "/api/v1/heals?id=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())

	w = serve(&fakeService{err: errors.New("db down")}, "/api/v1/heals?id=h-1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
