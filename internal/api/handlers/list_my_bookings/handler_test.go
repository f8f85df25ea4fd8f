package list_my_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/infra/session"
	"github.com/m04kA/heal-booking-service/internal/service/bookings"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

type fakeService struct {
	gotUser  uuid.UUID
	gotPage  int
	gotLimit int
	resp     []models.BookingResponse
	err      error
}

func (f *fakeService) ListMine(_ context.Context, p bookings.Principal, page, limit int) ([]models.BookingResponse, error) {
	f.gotUser, f.gotPage, f.gotLimit = p.ID(), page, limit
	return f.resp, f.err
}

func request(target string, p middleware.Principal) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if p != nil {
		r = r.WithContext(middleware.WithPrincipal(r.Context(), p))
	}
	return r
}

func TestHandle_OK(t *testing.T) {
	userID := uuid.New()
	svc := &fakeService{resp: []models.BookingResponse{{ID: "b-1"}}}
	w := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(w, request("/api/v1/bookings/mine?page=2&limit=10",
		session.New(userID, "anna@example.se", "Anna", domain.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, svc.gotUser)
	assert.Equal(t, 2, svc.gotPage)
	assert.Equal(t, 10, svc.gotLimit)
	assert.Contains(t, w.Body.String(), `"id":"b-1"`)
}

func TestHandle_NoPrincipal(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{}, logger.Nop()).Handle(w, request("/api/v1/bookings/mine", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_InternalError(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, logger.Nop()).Handle(w, request("/api/v1/bookings/mine",
		session.New(uuid.New(), "anna@example.se", "Anna", domain.RoleUser)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
