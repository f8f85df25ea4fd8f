package heal

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
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

func healRows(id uuid.UUID, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		id.String(), "Reiki", "reiki", "Beskrivning", "Översikt",
		"https://img/reiki.jpg", "Stockholm", "2030-05-02", "10:00",
		450.0, "onsite", "{reiki,energi}", now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO heals").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	heal, err := repo.Create(context.Background(), &domain.Heal{
		ID:    uuid.New(),
		Title: "Reiki",
		Slug:  "reiki",
		Mode:  domain.HealModeOnsite,
		Tags:  []string{"reiki"},
	})
	require.NoError(t, err)
	assert.Equal(t, now, heal.UpdatedAt)
}

func TestRepository_Create_SlugConflict(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO heals").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &domain.Heal{ID: uuid.New(), Slug: "reiki", Tags: []string{"x"}})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM heals WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(healRows(id, time.Now()))

	heal, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "reiki", heal.Slug)
	assert.Equal(t, []string{"reiki", "energi"}, heal.Tags)
	assert.Equal(t, 450.0, heal.Price)
	assert.Equal(t, domain.HealModeOnsite, heal.Mode)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM heals").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrHealNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM heals ORDER BY created_at DESC").
		WillReturnRows(healRows(uuid.New(), now))

	heals, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, heals, 1)
}

func TestRepository_SlugsWithBase(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT slug FROM heals WHERE slug ~ \\$1").
		WithArgs("^reiki(-[0-9]+)?$").
		WillReturnRows(sqlmock.NewRows([]string{"slug"}).AddRow("reiki").AddRow("reiki-3"))

	slugs, err := repo.SlugsWithBase(context.Background(), "reiki")
	require.NoError(t, err)
	assert.Equal(t, []string{"reiki", "reiki-3"}, slugs)
}

func TestRepository_SlugExists(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT EXISTS \\( SELECT 1 FROM heals WHERE slug = \\$1 \\)").
		WithArgs("reiki").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists(context.Background(), "reiki")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery("UPDATE heals SET updated_at = NOW\\(\\), title = \\$1, price = \\$2 WHERE id = \\$3 RETURNING").
		WithArgs("Reiki Deluxe", 500.0, id).
		WillReturnRows(healRows(id, time.Now()))

	_, err := repo.Update(context.Background(), id, domain.HealUpdate{
		Title: ptr.Ptr("Reiki Deluxe"),
		Price: ptr.Ptr(500.0),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM heals WHERE id = \\$1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrHealNotFound)
}

func TestRepository_Delete_InUse(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM heals WHERE id = \\$1").
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrHealInUse)
}
