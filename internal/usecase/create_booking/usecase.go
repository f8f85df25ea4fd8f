package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
	healRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/heal"
	userRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	healRepo     HealRepository
	userRepo     UserRepository
	metrics      MetricsRecorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc задает часовой пояс, в котором интерпретируются дата и слот.
func NewUseCase(
	bookingRepo BookingRepository,
	healRepo HealRepository,
	userRepo UserRepository,
	metrics MetricsRecorder,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		healRepo:     healRepo,
		userRepo:     userRepo,
		metrics:      metrics,
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

// Execute выполняет use case создания бронирования.
// Занятость слота не проверяется: две заявки на один слот обе будут приняты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: heal=%s, date=%s, slot=%s, mode=%s",
		req.HealID, req.ScheduledDate, req.ScheduledTime, req.Mode)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация и нормализация полей заявки
	p, err := validateRequest(req, now, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем идентификатор услуги
	healID, err := uuid.Parse(req.HealID)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid heal id=%q", req.HealID)
		return nil, fmt.Errorf("%w: %w", ErrInvalidHealID, invalid("healId", msgHealInvalid))
	}

	// 4. Услуга должна существовать
	if _, err := uc.healRepo.GetByID(ctx, healID); err != nil {
		if errors.Is(err, healRepo.ErrHealNotFound) {
			uc.logger.Warn("CreateBooking: heal id=%s not found", healID)
			return nil, ErrHealNotFound
		}
		uc.logger.Error("CreateBooking: failed to get heal id=%s: %v", healID, err)
		return nil, fmt.Errorf("%w: failed to get heal: %v", ErrInternal, err)
	}

	// 5. Привязываем бронирование к аккаунту по email, если он есть
	var ownerID *uuid.UUID
	owner, err := uc.userRepo.GetByEmail(ctx, p.email)
	switch {
	case err == nil:
		ownerID = &owner.ID
	case errors.Is(err, userRepo.ErrUserNotFound):
		uc.logger.Info("CreateBooking: no account for email, booking as guest")
	default:
		uc.logger.Warn("CreateBooking: owner lookup failed, booking as guest: %v", err)
	}

	// 6. Сохраняем бронирование
	email := p.email
	booking := &domain.Booking{
		ID:              uuid.New(),
		UserID:          ownerID,
		HealID:          healID,
		FirstName:       p.firstName,
		LastName:        p.lastName,
		Address:         p.address,
		Phone:           p.phone,
		Email:           &email,
		ScheduledAt:     p.slot.StartsAt(p.date, uc.location),
		Mode:            p.mode,
		TermsAccepted:   true,
		TermsAcceptedAt: &now,
		Status:          domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated(string(created.Mode))
	}
	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:          created.ID,
		ScheduledAt: created.ScheduledAt,
		Status:      string(created.Status),
	}, nil
}
