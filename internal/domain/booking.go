package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid проверяет, что статус входит в допустимое множество
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BookingMode формат сеанса
type BookingMode string

const (
	ModeOnsite BookingMode = "onsite"
	ModeOnline BookingMode = "online"
)

// IsValid проверяет, что режим бронирования допустим
func (m BookingMode) IsValid() bool {
	return m == ModeOnsite || m == ModeOnline
}

// Address почтовый адрес клиента
type Address struct {
	Street     string
	PostalCode string
	City       string
}

// Booking бронирование сеанса
type Booking struct {
	ID              uuid.UUID
	UserID          *uuid.UUID // nil для гостевых бронирований
	HealID          uuid.UUID
	FirstName       string
	LastName        string
	Address         Address
	Phone           string // E.164-подобный формат после нормализации
	Email           *string
	ScheduledAt     time.Time
	Mode            BookingMode
	TermsAccepted   bool
	TermsAcceptedAt *time.Time
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy возвращает true, если бронирование принадлежит пользователю:
// совпадает user_id, либо (для гостевого бронирования) email
func (b *Booking) IsOwnedBy(userID uuid.UUID, email string) bool {
	if b.UserID != nil {
		return *b.UserID == userID
	}
	if b.Email == nil || email == "" {
		return false
	}
	return strings.EqualFold(*b.Email, email)
}

// BookingFilter фильтр списка бронирований
type BookingFilter struct {
	UserID *uuid.UUID
	Email  *string // сравнение без учета регистра
	Limit  int
	Offset int
}

// BookingUpdate частичное обновление бронирования (nil = не менять)
type BookingUpdate struct {
	FirstName   *string
	LastName    *string
	Street      *string
	PostalCode  *string
	City        *string
	Phone       *string
	Email       *string
	Mode        *BookingMode
	ScheduledAt *time.Time
	Status      *BookingStatus
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u BookingUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil &&
		u.Street == nil && u.PostalCode == nil && u.City == nil &&
		u.Phone == nil && u.Email == nil && u.Mode == nil &&
		u.ScheduledAt == nil && u.Status == nil
}
