package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/heal-booking-service/pkg/types"
)

// Slot фиксированный временной интервал дня
type Slot struct {
	ID    string // "09:00-09:45"
	Start types.TimeString
	End   types.TimeString
}

// Label метка для отображения: "09.00 - 09.45"
func (s Slot) Label() string {
	return strings.ReplaceAll(s.Start.String(), ":", ".") + " - " + strings.ReplaceAll(s.End.String(), ":", ".")
}

// DurationMinutes длительность слота
func (s Slot) DurationMinutes() int {
	return s.End.Minutes() - s.Start.Minutes()
}

// StartsAt момент начала слота в указанную дату
func (s Slot) StartsAt(date time.Time, loc *time.Location) time.Time {
	return s.Start.On(date, loc)
}

var slotIDPattern = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// SlotCatalog семь ежедневных слотов, в порядке времени
var SlotCatalog = []Slot{
	newSlot("09:00", "09:45"),
	newSlot("10:00", "10:45"),
	newSlot("11:00", "11:45"),
	newSlot("13:00", "13:45"),
	newSlot("14:00", "14:45"),
	newSlot("15:00", "15:45"),
	newSlot("16:00", "16:45"),
}

func newSlot(start, end string) Slot {
	return Slot{
		ID:    start + "-" + end,
		Start: types.MustTimeString(start),
		End:   types.MustTimeString(end),
	}
}

// IsSlotIDFormat проверяет формат "HH:MM-HH:MM"
func IsSlotIDFormat(id string) bool {
	return slotIDPattern.MatchString(id)
}

// FindSlot ищет слот в каталоге по идентификатору
func FindSlot(id string) (Slot, bool) {
	for _, s := range SlotCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}
