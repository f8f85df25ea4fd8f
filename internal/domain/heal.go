package domain

import (
	"time"

	"github.com/google/uuid"
)

// HealMode формат проведения сеанса в каталоге
type HealMode string

const (
	HealModeOnsite HealMode = "onsite"
	HealModeOnline HealMode = "online"
	HealModeHybrid HealMode = "hybrid"
)

// IsValid проверяет формат
func (m HealMode) IsValid() bool {
	switch m {
	case HealModeOnsite, HealModeOnline, HealModeHybrid:
		return true
	}
	return false
}

// Heal услуга из каталога
type Heal struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	Overview    string
	ImageURL    string
	Location    string
	Date        string // свободный формат, задается администратором
	Time        string
	Price       float64
	Mode        HealMode
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HealUpdate частичное обновление услуги. Slug изменять нельзя.
type HealUpdate struct {
	Title       *string
	Description *string
	Overview    *string
	ImageURL    *string
	Location    *string
	Date        *string
	Time        *string
	Price       *float64
	Mode        *HealMode
	Tags        []string // nil = не менять
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u HealUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Overview == nil &&
		u.ImageURL == nil && u.Location == nil && u.Date == nil &&
		u.Time == nil && u.Price == nil && u.Mode == nil && u.Tags == nil
}
