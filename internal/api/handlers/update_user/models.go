package update_user

import (
	"encoding/json"

	"github.com/m04kA/heal-booking-service/internal/service/users/models"
)

// UpdateUserRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateUserRequest struct {
	ID        *string         `json:"id"`
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	Address   *models.Address `json:"address"`
	Phone     *string         `json:"phone"`
	Role      *string         `json:"role"`
	Password  *string         `json:"password"`

	TermsAccepted json.RawMessage `json:"termsAccepted"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateUserRequest) ToServiceRequest() *models.UpdateUserRequest {
	return &models.UpdateUserRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Address:       r.Address,
		Phone:         r.Phone,
		Role:          r.Role,
		Password:      r.Password,
		TermsAccepted: len(r.TermsAccepted) > 0,
	}
}
