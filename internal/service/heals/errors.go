package heals

import "errors"

var (
	// ErrHealNotFound возвращается, когда услуга не найдена
	ErrHealNotFound = errors.New("heals: heal not found")

	// ErrInvalidID возвращается, когда идентификатор отсутствует или не является UUID
	ErrInvalidID = errors.New("heals: invalid heal id")

	// ErrSlugExists возвращается, когда явно указанный slug уже занят
	ErrSlugExists = errors.New("heals: slug already exists")

	// ErrHealInUse возвращается, когда на услугу ссылаются бронирования
	ErrHealInUse = errors.New("heals: heal has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("heals: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("heals: internal error")
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
