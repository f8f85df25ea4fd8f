package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role роль пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid проверяет роль
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User учетная запись
type User struct {
	ID              uuid.UUID
	Email           string // всегда в нижнем регистре
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	Street          *string
	PostalCode      *string
	City            *string
	Phone           *string
	Role            Role
	TermsAccepted   bool
	TermsAcceptedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName имя для сессии: "Förnamn Efternamn" или email
func (u *User) DisplayName() string {
	var parts []string
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) != "" {
		parts = append(parts, strings.TrimSpace(*u.FirstName))
	}
	if u.LastName != nil && strings.TrimSpace(*u.LastName) != "" {
		parts = append(parts, strings.TrimSpace(*u.LastName))
	}
	if len(parts) == 0 {
		return u.Email
	}
	return strings.Join(parts, " ")
}

// IsAdmin возвращает true для администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate частичное обновление пользователя (nil = не менять)
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Street       *string
	PostalCode   *string
	City         *string
	Phone        *string
	Role         *Role
	PasswordHash *string
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil &&
		u.Street == nil && u.PostalCode == nil && u.City == nil &&
		u.Phone == nil && u.Role == nil && u.PasswordHash == nil
}
