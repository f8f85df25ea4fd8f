package session

import "errors"

var (
	// ErrMissingToken возвращается, когда в запросе нет bearer токена
	ErrMissingToken = errors.New("session: missing bearer token")

	// ErrInvalidToken возвращается для поддельного, просроченного или поврежденного токена
	ErrInvalidToken = errors.New("session: invalid token")
)
