package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/infra/redis"
	"github.com/m04kA/heal-booking-service/internal/infra/session"
)

// Principal аутентифицированный пользователь запроса
type Principal interface {
	ID() uuid.UUID
	Email() string
	Name() string
	Role() domain.Role
}

// SessionParser проверяет токен сессии
type SessionParser interface {
	Parse(token string) (*session.Session, error)
}

// RateLimiter списывает токен для ключа
type RateLimiter interface {
	Allow(ctx context.Context, key string) (redis.Decision, error)
}

// MetricsRecorder метрики HTTP запросов
type MetricsRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
