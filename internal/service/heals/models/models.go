package models

import (
	"time"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// Request модели

// CreateHealRequest запрос на создание услуги
type CreateHealRequest struct {
	Title       string   `json:"title"`
	Slug        *string  `json:"slug,omitempty"` // nil = сгенерировать из title
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	ImageURL    string   `json:"imageUrl"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Price       *float64 `json:"price"`
	Mode        string   `json:"mode"`
	Tags        []string `json:"tags"`
}

// UpdateHealRequest частичное обновление услуги (nil = не менять)
type UpdateHealRequest struct {
	ID          *string  `json:"id,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Slug        *string  `json:"slug,omitempty"` // любое значение отклоняется
	Description *string  `json:"description,omitempty"`
	Overview    *string  `json:"overview,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Time        *string  `json:"time,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Mode        *string  `json:"mode,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Response модели

// HealResponse ответ с данными услуги
type HealResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	ImageURL    string    `json:"imageUrl"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Price       float64   `json:"price"`
	Mode        string    `json:"mode"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainHeal конвертирует domain модель в DTO
func FromDomainHeal(h *domain.Heal) *HealResponse {
	if h == nil {
		return nil
	}

	tags := h.Tags
	if tags == nil {
		tags = []string{}
	}

	return &HealResponse{
		ID:          h.ID.String(),
		Title:       h.Title,
		Slug:        h.Slug,
		Description: h.Description,
		Overview:    h.Overview,
		ImageURL:    h.ImageURL,
		Location:    h.Location,
		Date:        h.Date,
		Time:        h.Time,
		Price:       h.Price,
		Mode:        string(h.Mode),
		Tags:        tags,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// FromDomainHealList конвертирует список domain моделей в DTO
func FromDomainHealList(heals []*domain.Heal) []HealResponse {
	resp := make([]HealResponse, 0, len(heals))
	for _, heal := range heals {
		if h := FromDomainHeal(heal); h != nil {
			resp = append(resp, *h)
		}
	}
	return resp
}
