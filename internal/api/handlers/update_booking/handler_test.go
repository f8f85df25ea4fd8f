package update_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/infra/session"
	"github.com/m04kA/heal-booking-service/internal/service/bookings"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

type fakeService struct {
	gotID  string
	gotReq *models.UpdateBookingRequest
	resp   *models.BookingResponse
	err    error
}

func (f *fakeService) Update(
	_ context.Context,
	_ bookings.Principal,
	rawID string,
	req *models.UpdateBookingRequest,
) (*models.BookingResponse, error) {
	f.gotID, f.gotReq = rawID, req
	return f.resp, f.err
}

func serve(svc BookingService, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	h := NewHandler(svc, logger.Nop())
	router.HandleFunc("/api/v1/bookings", h.Handle).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/bookings/{id}", h.Handle).Methods(http.MethodPut)

	r := httptest.NewRequest(http.MethodPut, target, strings.NewReader(body))
	p := session.New(uuid.New(), "anna@example.se", "Anna", domain.RoleUser)
	r = r.WithContext(middleware.WithPrincipal(r.Context(), p))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_IDSources(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		wantID string
	}{
		{"path", "/api/v1/bookings/p-1?id=q-1", `{"id":"b-1","status":"confirmed"}`, "p-1"},
		{"query", "/api/v1/bookings?id=q-1", `{"id":"b-1","status":"confirmed"}`, "q-1"},
		{"body", "/api/v1/bookings", `{"id":"b-1","status":"confirmed"}`, "b-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{resp: &models.BookingResponse{ID: tt.wantID, Status: "confirmed"}}

			w := serve(svc, tt.target, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantID, svc.gotID)
			require.NotNil(t, svc.gotReq.Status)
			assert.Equal(t, "confirmed", *svc.gotReq.Status)
			assert.False(t, svc.gotReq.TermsAccepted)
		})
	}
}

func TestHandle_MissingID(t *testing.T) {
	w := serve(&fakeService{}, "/api/v1/bookings", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"ID krävs (?id= eller i body)"}`, w.Body.String())
}

func TestHandle_TermsPresenceDetected(t *testing.T) {
	for _, body := range []string{`{"termsAccepted":false}`, `{"termsAccepted":null}`, `{"termsAccepted":true}`} {
		svc := &fakeService{err: &bookings.ValidationError{Field: "termsAccepted", Message: "Villkorsgodkännande kan inte ändras"}}

		w := serve(svc, "/api/v1/bookings?id=x", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.True(t, svc.gotReq.TermsAccepted, body)
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid id", fmt.Errorf("%w: %w", bookings.ErrInvalidID, &bookings.ValidationError{Field: "id", Message: "Ogiltigt ID"}),
			http.StatusBadRequest, `{"error":"Ogiltigt ID"}`},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, `{"error":"Bokning hittades inte"}`},
		{"forbidden", bookings.ErrAccessDenied, http.StatusForbidden, `{"error":"Åtkomst nekad"}`},
		{"internal", errors.New("db down"), http.StatusInternalServerError, `{"error":"Serverfel"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.err}, "/api/v1/bookings/x", `{"status":"confirmed"}`)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
