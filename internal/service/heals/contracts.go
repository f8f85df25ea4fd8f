package heals

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// HealRepository интерфейс репозитория каталога услуг
type HealRepository interface {
	Create(ctx context.Context, heal *domain.Heal) (*domain.Heal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Heal, error)
	List(ctx context.Context) ([]*domain.Heal, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugsWithBase(ctx context.Context, base string) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.HealUpdate) (*domain.Heal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
