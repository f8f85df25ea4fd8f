package list_slots

import (
	"time"

	"github.com/m04kA/heal-booking-service/internal/domain"
	listSlots "github.com/m04kA/heal-booking-service/internal/usecase/list_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	StartsAt        string `json:"startsAt"`
	IsPast          bool   `json:"isPast"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			ID:              slot.ID,
			Label:           slot.Label,
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			StartsAt:        slot.StartsAt.Format(time.RFC3339),
			IsPast:          slot.IsPast,
		}
	}

	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
