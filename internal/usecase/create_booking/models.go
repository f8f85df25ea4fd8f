package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// Request заявка на бронирование в том виде, в каком ее прислал клиент
type Request struct {
	HealID        string
	ScheduledDate string // YYYY-MM-DD или RFC 3339
	ScheduledTime string // идентификатор слота, например "09:00-09:45"
	Mode          string
	FirstName     string
	LastName      string
	Street        string
	PostalCode    string
	City          string
	Phone         string
	Email         string
	TermsAccepted bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	ScheduledAt time.Time
	Status      string
}

// payload проверенная и нормализованная заявка
type payload struct {
	date      time.Time
	slot      domain.Slot
	mode      domain.BookingMode
	firstName string
	lastName  string
	address   domain.Address
	phone     string
	email     string
}
