package delete_heal

import "context"

type HealService interface {
	Delete(ctx context.Context, rawID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
