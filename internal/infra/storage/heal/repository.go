package heal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/infra/storage/postgres"
	"github.com/m04kA/heal-booking-service/pkg/psqlbuilder"
)

const table = "heals"

var columns = []string{
	"id",
	"title",
	"slug",
	"description",
	"overview",
	"image_url",
	"location",
	"event_date",
	"event_time",
	"price",
	"mode",
	"tags",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет услугу. Нарушение уникальности slug возвращает ErrSlugExists.
func (r *Repository) Create(ctx context.Context, heal *domain.Heal) (*domain.Heal, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:12]...).
		Values(
			heal.ID,
			heal.Title,
			heal.Slug,
			heal.Description,
			heal.Overview,
			heal.ImageURL,
			heal.Location,
			heal.Date,
			heal.Time,
			heal.Price,
			heal.Mode,
			pq.Array(heal.Tags),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&heal.CreatedAt, &heal.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrSlugExists, heal.Slug)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return heal, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Heal, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	heal, err := scanHeal(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan heal: %v", ErrScanRow, err)
	}

	return heal, nil
}

// List возвращает все услуги, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Heal, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	heals := make([]*domain.Heal, 0)
	for rows.Next() {
		heal, err := scanHeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		heals = append(heals, heal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return heals, nil
}

// SlugExists проверяет, занят ли slug
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: SlugExists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// SlugsWithBase возвращает base и все занятые варианты base-N
func (r *Repository) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	pattern := "^" + regexp.QuoteMeta(base) + "(-[0-9]+)?$"

	query, args, err := psqlbuilder.Select("slug").
		From(table).
		Where(squirrel.Expr("slug ~ ?", pattern)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SlugsWithBase - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SlugsWithBase - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slugs := make([]string, 0)
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("%w: SlugsWithBase - scan slug: %v", ErrScanRow, err)
		}
		slugs = append(slugs, slug)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SlugsWithBase - rows error: %v", ErrScanRow, err)
	}

	return slugs, nil
}

// Update применяет частичное обновление. Slug не изменяется.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, upd domain.HealUpdate) (*domain.Heal, error) {
	updateBuilder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if upd.Title != nil {
		updateBuilder = updateBuilder.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
	}
	if upd.Overview != nil {
		updateBuilder = updateBuilder.Set("overview", *upd.Overview)
	}
	if upd.ImageURL != nil {
		updateBuilder = updateBuilder.Set("image_url", *upd.ImageURL)
	}
	if upd.Location != nil {
		updateBuilder = updateBuilder.Set("location", *upd.Location)
	}
	if upd.Date != nil {
		updateBuilder = updateBuilder.Set("event_date", *upd.Date)
	}
	if upd.Time != nil {
		updateBuilder = updateBuilder.Set("event_time", *upd.Time)
	}
	if upd.Price != nil {
		updateBuilder = updateBuilder.Set("price", *upd.Price)
	}
	if upd.Mode != nil {
		updateBuilder = updateBuilder.Set("mode", *upd.Mode)
	}
	if upd.Tags != nil {
		updateBuilder = updateBuilder.Set("tags", pq.Array(upd.Tags))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	heal, err := scanHeal(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return heal, nil
}

// Delete удаляет услугу
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return ErrHealInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHealNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHeal(row rowScanner) (*domain.Heal, error) {
	var heal domain.Heal

	err := row.Scan(
		&heal.ID,
		&heal.Title,
		&heal.Slug,
		&heal.Description,
		&heal.Overview,
		&heal.ImageURL,
		&heal.Location,
		&heal.Date,
		&heal.Time,
		&heal.Price,
		&heal.Mode,
		pq.Array(&heal.Tags),
		&heal.CreatedAt,
		&heal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &heal, nil
}
