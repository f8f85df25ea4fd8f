package models

import (
	"time"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр администратора
type ListBookingsRequest struct {
	UserID string // пусто = без фильтра
	Email  string // пусто = без фильтра
	Page   int
	Limit  int
}

// AddressPatch частичное обновление адреса
type AddressPatch struct {
	Street     *string `json:"street,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
}

// UpdateBookingRequest частичное обновление бронирования (nil = не менять)
type UpdateBookingRequest struct {
	FirstName   *string
	LastName    *string
	Address     *AddressPatch
	Phone       *string
	Email       *string
	Mode        *string
	ScheduledAt *string // RFC 3339 или YYYY-MM-DD
	Status      *string

	// TermsAccepted true, если клиент прислал поле termsAccepted с любым значением
	TermsAccepted bool
}

// Response модели

// AddressResponse адрес клиента
type AddressResponse struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string          `json:"id"`
	UserID          *string         `json:"userId,omitempty"`
	HealID          string          `json:"healId"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Address         AddressResponse `json:"address"`
	Phone           string          `json:"phone"`
	Email           *string         `json:"email,omitempty"`
	ScheduledAt     time.Time       `json:"scheduledAt"`
	Mode            string          `json:"mode"`
	TermsAccepted   bool            `json:"termsAccepted"`
	TermsAcceptedAt *time.Time      `json:"termsAcceptedAt,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID.String(),
		HealID:    b.HealID.String(),
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Address: AddressResponse{
			Street:     b.Address.Street,
			PostalCode: b.Address.PostalCode,
			City:       b.Address.City,
		},
		Phone:           b.Phone,
		Email:           b.Email,
		ScheduledAt:     b.ScheduledAt,
		Mode:            string(b.Mode),
		TermsAccepted:   b.TermsAccepted,
		TermsAcceptedAt: b.TermsAcceptedAt,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.UserID != nil {
		userID := b.UserID.String()
		resp.UserID = &userID
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO.
// Пустой список сериализуется как [], а не null.
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if b := FromDomainBooking(booking); b != nil {
			resp = append(resp, *b)
		}
	}
	return resp
}
