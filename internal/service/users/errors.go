package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrEmailExists возвращается, когда email уже зарегистрирован
	ErrEmailExists = errors.New("users: email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email и пароль
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrInvalidID возвращается, когда идентификатор отсутствует или не является UUID
	ErrInvalidID = errors.New("users: invalid user id")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)

// ValidationError ошибка поля запроса. Message готов к показу клиенту.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap позволяет сравнивать через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
