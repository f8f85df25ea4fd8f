package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/infra/session"
)

const (
	msgUnauthorized = "Du måste vara inloggad"
	msgForbidden    = "Åtkomst nekad"
)

type principalKey struct{}

// WithPrincipal кладет пользователя в контекст
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext достает пользователя, положенного Auth middleware
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p != nil
}

// Auth проверяет Bearer токен сессии
type Auth struct {
	sessions SessionParser
	logger   Logger
}

func NewAuth(sessions SessionParser, logger Logger) *Auth {
	return &Auth{
		sessions: sessions,
		logger:   logger,
	}
}

// Optional кладет пользователя в контекст, если токен есть и валиден.
// Невалидный токен игнорируется.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, err := a.authenticate(r); err == nil {
			r = r.WithContext(WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}

// Required отвечает 401 без валидного токена
func (a *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := a.authenticate(r)
		if err != nil {
			a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// Admin отвечает 401 без токена и 403 для роли, отличной от admin
func (a *Auth) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := a.authenticate(r)
		if err != nil {
			a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if p.Role() != domain.RoleAdmin {
			a.logger.Warn("%s %s - Forbidden: user_id=%s, role=%s", r.Method, r.URL.Path, p.ID(), p.Role())
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

func (a *Auth) authenticate(r *http.Request) (Principal, error) {
	token, err := session.BearerToken(r)
	if err != nil {
		return nil, err
	}

	s, err := a.sessions.Parse(token)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("empty session")
	}
	return s, nil
}
