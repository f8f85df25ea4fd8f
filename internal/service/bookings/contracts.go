package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Principal аутентифицированный пользователь запроса
type Principal interface {
	ID() uuid.UUID
	Email() string
	Name() string
	Role() domain.Role
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
