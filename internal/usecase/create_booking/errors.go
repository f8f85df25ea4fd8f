package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidHealID возвращается, когда идентификатор услуги не является UUID
	ErrInvalidHealID = errors.New("create_booking: invalid heal id")

	// ErrHealNotFound возвращается, когда услуга не найдена
	ErrHealNotFound = errors.New("create_booking: heal not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError первая найденная ошибка заявки. Message готов к показу клиенту.
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
