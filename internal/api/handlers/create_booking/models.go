package create_booking

import (
	"bytes"
	"encoding/json"
	"strings"

	createBooking "github.com/m04kA/heal-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HealID        string   `json:"healId"`
	ScheduledDate string   `json:"scheduledDate"` // "2025-10-15"
	ScheduledTime string   `json:"scheduledTime"` // "09:00-09:45"
	Mode          string   `json:"mode"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Street        string   `json:"street"`
	PostalCode    string   `json:"postalCode"`
	City          string   `json:"city"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	TermsAccepted flexBool `json:"termsAccepted"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID string `json:"id"`
}

// flexBool принимает true, "true", "on", "1" и 1 как согласие.
// Формы присылают чекбокс строкой.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "on", "1", "yes":
			*b = true
		default:
			*b = false
		}
		return nil
	}

	*b = flexBool(string(data) == "1")
	return nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		HealID:        r.HealID,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		Mode:          r.Mode,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Street:        r.Street,
		PostalCode:    r.PostalCode,
		City:          r.City,
		Phone:         r.Phone,
		Email:         r.Email,
		TermsAccepted: bool(r.TermsAccepted),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{ID: resp.ID.String()}
}
