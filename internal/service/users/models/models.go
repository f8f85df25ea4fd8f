package models

import (
	"time"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// Request модели

// Address адрес пользователя (nil поле = не задано)
type Address struct {
	Street     *string `json:"street,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
}

// CreateUserRequest регистрация или создание пользователя администратором
type CreateUserRequest struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	FirstName     *string  `json:"firstName,omitempty"`
	LastName      *string  `json:"lastName,omitempty"`
	Address       *Address `json:"address,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	TermsAccepted bool     `json:"termsAccepted"`
}

// LoginRequest вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest частичное обновление пользователя (nil = не менять)
type UpdateUserRequest struct {
	FirstName *string
	LastName  *string
	Address   *Address
	Phone     *string
	Role      *string
	Password  *string

	// TermsAccepted true, если клиент прислал поле termsAccepted с любым значением
	TermsAccepted bool
}

// Response модели

// RegisterResponse ответ на регистрацию
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AddressResponse адрес пользователя
type AddressResponse struct {
	Street     *string `json:"street,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
}

// UserResponse пользователь без хеша пароля
type UserResponse struct {
	ID              string           `json:"id"`
	Email           string           `json:"email"`
	FirstName       *string          `json:"firstName,omitempty"`
	LastName        *string          `json:"lastName,omitempty"`
	Address         *AddressResponse `json:"address,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Role            string           `json:"role"`
	TermsAccepted   bool             `json:"termsAccepted"`
	TermsAcceptedAt *time.Time       `json:"termsAcceptedAt,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// SessionUser пользователь в ответе на вход
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse токен сессии
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      SessionUser `json:"user"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		Role:            string(u.Role),
		TermsAccepted:   u.TermsAccepted,
		TermsAcceptedAt: u.TermsAcceptedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}

	if u.Street != nil || u.PostalCode != nil || u.City != nil {
		resp.Address = &AddressResponse{
			Street:     u.Street,
			PostalCode: u.PostalCode,
			City:       u.City,
		}
	}

	return resp
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		if u := FromDomainUser(user); u != nil {
			resp = append(resp, *u)
		}
	}
	return resp
}
