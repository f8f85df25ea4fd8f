package list_slots

import (
	"time"

	"github.com/m04kA/heal-booking-service/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date string // YYYY-MM-DD, пустая строка означает сегодня
}

// Response слоты на дату
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель временного слота
type Slot struct {
	ID              string
	Label           string
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	StartsAt        time.Time
	IsPast          bool // начало слота уже прошло
}
