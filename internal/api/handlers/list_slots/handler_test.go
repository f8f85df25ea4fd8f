package list_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listSlots "github.com/m04kA/heal-booking-service/internal/usecase/list_slots"
	"github.com/m04kA/heal-booking-service/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	uc := listSlots.NewUseCase(loc, logger.Nop()).
		WithTimeProvider(fixedTime{now: time.Date(2030, 3, 10, 10, 0, 0, 0, loc)})

	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_Today(t *testing.T) {
	w := serve(t, "/api/v1/slots")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "2030-03-10", resp.Date)
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, "09:00-09:45", resp.Slots[0].ID)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:45", resp.Slots[0].EndTime)
	assert.Equal(t, 45, resp.Slots[0].DurationMinutes)
	assert.True(t, resp.Slots[0].IsPast)
	assert.False(t, resp.Slots[len(resp.Slots)-1].IsPast)
}

func TestHandle_BadDates(t *testing.T) {
	w := serve(t, "/api/v1/slots?date=10-03-2030")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Ogiltigt datum"}`, w.Body.String())

	w = serve(t, "/api/v1/slots?date=2030-03-09")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Datum kan inte vara i det förflutna"}`, w.Body.String())
}
