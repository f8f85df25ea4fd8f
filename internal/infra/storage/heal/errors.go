package heal

import "errors"

var (
	// ErrHealNotFound возвращается, когда услуга не найдена
	ErrHealNotFound = errors.New("heal.repository: heal not found")

	// ErrSlugExists возвращается при нарушении уникальности slug
	ErrSlugExists = errors.New("heal.repository: slug already exists")

	// ErrHealInUse возвращается, когда на услугу ссылаются бронирования
	ErrHealInUse = errors.New("heal.repository: heal is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("heal.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("heal.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("heal.repository: failed to scan row")
)
