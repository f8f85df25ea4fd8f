package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// HealRepository интерфейс каталога услуг
type HealRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Heal, error)
}

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// MetricsRecorder счетчик созданных бронирований
type MetricsRecorder interface {
	IncBookingsCreated(mode string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
