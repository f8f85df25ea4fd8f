package register

import (
	"context"

	"github.com/m04kA/heal-booking-service/internal/service/users/models"
)

type UserService interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.RegisterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
