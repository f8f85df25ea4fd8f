package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRow(id, healID uuid.UUID, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		id.String(), nil, healID.String(),
		"Anna", "Svensson", "Storgatan 1", "111 22", "Stockholm",
		"+46701234567", "anna@example.se", now, "onsite",
		true, now, "pending", now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	booking := &domain.Booking{
		ID:          uuid.New(),
		HealID:      uuid.New(),
		FirstName:   "Anna",
		LastName:    "Svensson",
		Phone:       "+46701234567",
		ScheduledAt: now.Add(24 * time.Hour),
		Mode:        domain.ModeOnsite,
		Status:      domain.StatusPending,
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	id, healID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(bookingRow(id, healID, now))

	booking, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, booking.ID)
	assert.Nil(t, booking.UserID)
	assert.Equal(t, healID, booking.HealID)
	assert.Equal(t, "Stockholm", booking.Address.City)
	assert.Equal(t, domain.ModeOnsite, booking.Mode)
	require.NotNil(t, booking.Email)
	assert.Equal(t, "anna@example.se", *booking.Email)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List_Filters(t *testing.T) {
	repo, mock := newRepo(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE user_id = \\$1 AND lower\\(email\\) = \\$2 ORDER BY created_at DESC LIMIT 20 OFFSET 20").
		WithArgs(userID, "anna@example.se").
		WillReturnRows(bookingRow(uuid.New(), uuid.New(), now).AddRow(
			uuid.New().String(), userID.String(), uuid.New().String(),
			"Bo", "Ek", "Vägen 2", "222 33", "Malmö",
			"+46709876543", nil, now, "online",
			true, nil, "confirmed", now, now,
		))

	bookings, err := repo.List(context.Background(), domain.BookingFilter{
		UserID: &userID,
		Email:  ptr.Ptr("Anna@Example.se"),
		Limit:  20,
		Offset: 20,
	})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.NotNil(t, bookings[1].UserID)
	assert.Equal(t, userID, *bookings[1].UserID)
	assert.Nil(t, bookings[1].Email)
	assert.Nil(t, bookings[1].TermsAcceptedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), domain.BookingFilter{})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	now := time.Now()
	status := domain.StatusConfirmed

	mock.ExpectQuery("UPDATE bookings SET updated_at = NOW\\(\\), status = \\$1 WHERE id = \\$2 RETURNING").
		WithArgs(status, id).
		WillReturnRows(bookingRow(id, uuid.New(), now))

	_, err := repo.Update(context.Background(), id, domain.BookingUpdate{Status: &status})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("UPDATE bookings").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Update(context.Background(), uuid.New(), domain.BookingUpdate{City: ptr.Ptr("Lund")})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM bookings WHERE id = \\$1").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrBookingNotFound)
}
