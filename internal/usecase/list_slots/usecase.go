package list_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает каталог слотов на дату. Слоты, начало которых
// уже прошло, помечаются IsPast.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()
	today := domain.StartOfDay(now, uc.location)

	// 1. Определяем дату
	date := today
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, uc.location)
		if err != nil {
			uc.logger.Warn("ListSlots: invalid date=%q", raw)
			return nil, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, raw)
		}
		date = parsed
	}

	// 2. Прошедшие даты не показываем
	if date.Before(today) {
		uc.logger.Warn("ListSlots: date=%s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Собираем слоты
	slots := make([]Slot, 0, len(domain.SlotCatalog))
	for _, s := range domain.SlotCatalog {
		startsAt := s.StartsAt(date, uc.location)
		slots = append(slots, Slot{
			ID:              s.ID,
			Label:           s.Label(),
			StartTime:       s.Start,
			EndTime:         s.End,
			DurationMinutes: s.DurationMinutes(),
			StartsAt:        startsAt,
			IsPast:          !startsAt.After(now),
		})
	}

	uc.logger.Info("ListSlots: date=%s, slots=%d", date.Format(domain.DateFormat), len(slots))

	return &Response{Date: date, Slots: slots}, nil
}
