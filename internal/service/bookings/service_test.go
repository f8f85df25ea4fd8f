package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/heal-booking-service/internal/domain"
	bookingRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/booking"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
	"github.com/m04kA/heal-booking-service/pkg/logger"
	"github.com/m04kA/heal-booking-service/pkg/ptr"
)

type fakeRepo struct {
	bookings    map[uuid.UUID]*domain.Booking
	lastFilter  domain.BookingFilter
	lastUpdate  *domain.BookingUpdate
	getCalls    int
	deleteCalls int
	err         error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[uuid.UUID]*domain.Booking{}}
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.UserID != nil && (b.UserID == nil || *b.UserID != *filter.UserID) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, upd domain.BookingUpdate) (*domain.Booking, error) {
	f.lastUpdate = &upd
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if upd.Phone != nil {
		b.Phone = *upd.Phone
	}
	if upd.Status != nil {
		b.Status = *upd.Status
	}
	if upd.Email != nil {
		b.Email = upd.Email
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleteCalls++
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type principal struct {
	id    uuid.UUID
	email string
	role  domain.Role
}

func (p principal) ID() uuid.UUID     { return p.id }
func (p principal) Email() string     { return p.email }
func (p principal) Name() string      { return "Test" }
func (p principal) Role() domain.Role { return p.role }

func newService(repo *fakeRepo) *Service {
	return NewService(repo, time.UTC, logger.Nop())
}

func seedBooking(repo *fakeRepo, owner *uuid.UUID, email string) *domain.Booking {
	b := &domain.Booking{
		ID:            uuid.New(),
		UserID:        owner,
		HealID:        uuid.New(),
		FirstName:     "Anna",
		LastName:      "Svensson",
		Phone:         "+46701234567",
		Email:         ptr.Ptr(email),
		ScheduledAt:   time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		Mode:          domain.ModeOnsite,
		TermsAccepted: true,
		Status:        domain.StatusPending,
	}
	repo.bookings[b.ID] = b
	return b
}

func admin() principal {
	return principal{id: uuid.New(), email: "admin@example.com", role: domain.RoleAdmin}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, nil, "anna@example.com")
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, b.ID.String(), resp.ID)
	assert.Nil(t, resp.UserID)

	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_Filters(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	userID := uuid.New()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		UserID: userID.String(),
		Email:  " Anna@Example.com",
		Page:   3,
		Limit:  500,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.UserID)
	assert.Equal(t, userID, *repo.lastFilter.UserID)
	require.NotNil(t, repo.lastFilter.Email)
	assert.Equal(t, "anna@example.com", *repo.lastFilter.Email)
	assert.Equal(t, 100, repo.lastFilter.Limit)
	assert.Equal(t, 200, repo.lastFilter.Offset)
}

func TestList_Defaults(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	assert.NotNil(t, resp)
	assert.Empty(t, resp)
	assert.Nil(t, repo.lastFilter.UserID)
	assert.Nil(t, repo.lastFilter.Email)
	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}

func TestList_InvalidUserID(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{UserID: "42"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListMine(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	seedBooking(repo, &owner, "anna@example.com")
	seedBooking(repo, nil, "anna@example.com")
	svc := newService(repo)

	resp, err := svc.ListMine(context.Background(), principal{id: owner, role: domain.RoleUser}, 0, 0)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, owner.String(), *resp[0].UserID)
}

func TestUpdate_NormalizesFields(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, nil, "anna@example.com")
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), admin(), b.ID.String(), &models.UpdateBookingRequest{
		Phone:  ptr.Ptr("(070) 765 43 21"),
		Email:  ptr.Ptr(" ANNA@example.com "),
		Status: ptr.Ptr("completed"),
		Address: &models.AddressPatch{
			City: ptr.Ptr(" Uppsala "),
		},
		ScheduledAt: ptr.Ptr("2026-04-01T10:00:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, "+46707654321", resp.Phone)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, repo.lastUpdate)
	assert.Equal(t, "anna@example.com", *repo.lastUpdate.Email)
	assert.Equal(t, "Uppsala", *repo.lastUpdate.City)
	assert.Nil(t, repo.lastUpdate.Street)
	assert.True(t, repo.lastUpdate.ScheduledAt.Equal(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)))
}

func TestUpdate_StatusHasNoGuard(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, nil, "anna@example.com")
	b.Status = domain.StatusCompleted
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), admin(), b.ID.String(), &models.UpdateBookingRequest{
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestUpdate_TermsAcceptedAlwaysRejected(t *testing.T) {
	repo := newFakeRepo()
	b := seedBooking(repo, nil, "anna@example.com")
	svc := newService(repo)

	_, err := svc.Update(context.Background(), admin(), b.ID.String(), &models.UpdateBookingRequest{
		TermsAccepted: true,
		FirstName:     ptr.Ptr("Eva"),
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "termsAccepted", vErr.Field)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.lastUpdate)
	assert.True(t, repo.bookings[b.ID].TermsAccepted)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   *models.UpdateBookingRequest
		field string
	}{
		{"nothing", &models.UpdateBookingRequest{}, ""},
		{"empty address patch", &models.UpdateBookingRequest{Address: &models.AddressPatch{}}, ""},
		{"blank name", &models.UpdateBookingRequest{FirstName: ptr.Ptr("  ")}, "firstName"},
		{"blank street", &models.UpdateBookingRequest{Address: &models.AddressPatch{Street: ptr.Ptr("")}}, "address.street"},
		{"bad phone", &models.UpdateBookingRequest{Phone: ptr.Ptr("123")}, "phone"},
		{"bad email", &models.UpdateBookingRequest{Email: ptr.Ptr("anna")}, "email"},
		{"bad mode", &models.UpdateBookingRequest{Mode: ptr.Ptr("hybrid")}, "mode"},
		{"bad date", &models.UpdateBookingRequest{ScheduledAt: ptr.Ptr("imorgon")}, "scheduledAt"},
		{"bad status", &models.UpdateBookingRequest{Status: ptr.Ptr("done")}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			b := seedBooking(repo, nil, "anna@example.com")

			_, err := newService(repo).Update(context.Background(), admin(), b.ID.String(), tt.req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Nil(t, repo.lastUpdate)
		})
	}
}

func TestUpdate_NotFoundAndAccess(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	b := seedBooking(repo, &owner, "anna@example.com")
	guest := seedBooking(repo, nil, "guest@example.com")
	svc := newService(repo)
	req := &models.UpdateBookingRequest{FirstName: ptr.Ptr("Eva")}

	_, err := svc.Update(context.Background(), admin(), uuid.NewString(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	stranger := principal{id: uuid.New(), email: "anna@example.com", role: domain.RoleUser}
	_, err = svc.Update(context.Background(), stranger, b.ID.String(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), principal{id: owner, role: domain.RoleUser}, b.ID.String(), req)
	assert.NoError(t, err)

	guestUser := principal{id: uuid.New(), email: "GUEST@example.com", role: domain.RoleUser}
	_, err = svc.Update(context.Background(), guestUser, guest.ID.String(), req)
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	t.Run("invalid id never reaches the database", func(t *testing.T) {
		repo := newFakeRepo()
		err := newService(repo).Delete(context.Background(), admin(), "123")

		assert.ErrorIs(t, err, ErrInvalidID)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, repo.getCalls)
		assert.Zero(t, repo.deleteCalls)
	})

	t.Run("absent", func(t *testing.T) {
		err := newService(newFakeRepo()).Delete(context.Background(), admin(), uuid.NewString())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		repo := newFakeRepo()
		owner := uuid.New()
		b := seedBooking(repo, &owner, "anna@example.com")

		err := newService(repo).Delete(context.Background(), principal{id: owner, role: domain.RoleUser}, b.ID.String())
		require.NoError(t, err)
		assert.Empty(t, repo.bookings)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, nil, "anna@example.com")

		err := newService(repo).Delete(context.Background(), principal{id: uuid.New(), role: domain.RoleUser}, b.ID.String())
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.err = errors.New("db down")

		err := newService(repo).Delete(context.Background(), admin(), uuid.NewString())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
