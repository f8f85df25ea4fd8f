package create_heal

import (
	"encoding/json"

	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
)

// CreateHealRequest HTTP request model.
// price и tags читаются как есть: значение неверного типа превращается
// в отсутствующее и дает сообщение о конкретном поле.
type CreateHealRequest struct {
	Title       string          `json:"title"`
	Slug        *string         `json:"slug"`
	Description string          `json:"description"`
	Overview    string          `json:"overview"`
	ImageURL    string          `json:"imageUrl"`
	Location    string          `json:"location"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Price       json.RawMessage `json:"price"`
	Mode        string          `json:"mode"`
	Tags        json.RawMessage `json:"tags"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateHealRequest) ToServiceRequest() *models.CreateHealRequest {
	return &models.CreateHealRequest{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Overview:    r.Overview,
		ImageURL:    r.ImageURL,
		Location:    r.Location,
		Date:        r.Date,
		Time:        r.Time,
		Price:       number(r.Price),
		Mode:        r.Mode,
		Tags:        stringList(r.Tags),
	}
}

func number(raw json.RawMessage) *float64 {
	var v *float64
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return nil
	}
	return v
}

func stringList(raw json.RawMessage) []string {
	var v []string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return nil
	}
	return v
}
