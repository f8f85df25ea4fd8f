package update_booking

import (
	"encoding/json"

	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateBookingRequest struct {
	ID          string               `json:"id"`
	FirstName   *string              `json:"firstName"`
	LastName    *string              `json:"lastName"`
	Address     *models.AddressPatch `json:"address"`
	Phone       *string              `json:"phone"`
	Email       *string              `json:"email"`
	Mode        *string              `json:"mode"`
	ScheduledAt *string              `json:"scheduledAt"`
	Status      *string              `json:"status"`

	// Любое значение, включая null, считается попыткой изменения
	TermsAccepted json.RawMessage `json:"termsAccepted"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		Mode:          r.Mode,
		ScheduledAt:   r.ScheduledAt,
		Status:        r.Status,
		TermsAccepted: len(r.TermsAccepted) > 0,
	}
}
