package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
	bookingRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/booking"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
)

// Сообщения об ошибках для клиента
const (
	msgInvalidID        = "Ogiltigt ID"
	msgInvalidUserID    = "Ogiltigt användar-ID"
	msgTermsImmutable   = "Villkorsgodkännande kan inte ändras"
	msgNoFields         = "Inga fält att uppdatera"
	msgInvalidStatus    = "Ogiltig status"
	msgInvalidMode      = "Ogiltigt bokningsläge"
	msgInvalidDate      = "Ogiltigt datum"
	msgFirstNameMissing = "Förnamn är obligatoriskt"
	msgLastNameMissing  = "Efternamn är obligatoriskt"
	msgStreetMissing    = "Gatuadress är obligatoriskt"
	msgPostalMissing    = "Postnummer är obligatoriskt"
	msgCityMissing      = "Stad är obligatoriskt"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// loc используется для дат без времени в обновлениях.
func NewService(bookingRepo BookingRepository, loc *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		location:    loc,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, rawID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", rawID)

	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("GetByID: invalid id=%q", rawID)
		return nil, err
	}

	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования с фильтрами, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.logger.Info("List: userId=%q, email=%q, page=%d, limit=%d", req.UserID, req.Email, req.Page, req.Limit)

	filter := domain.BookingFilter{}

	if raw := strings.TrimSpace(req.UserID); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("List: invalid userId=%q", raw)
			return nil, invalid("userId", msgInvalidUserID)
		}
		filter.UserID = &userID
	}

	if email := domain.NormalizeEmail(req.Email); email != "" {
		filter.Email = &email
	}

	_, filter.Limit, filter.Offset = domain.Page(req.Page, req.Limit)

	return s.list(ctx, "List", filter)
}

// ListMine возвращает бронирования, привязанные к аккаунту пользователя
func (s *Service) ListMine(ctx context.Context, principal Principal, page, limit int) ([]models.BookingResponse, error) {
	userID := principal.ID()
	s.logger.Info("ListMine: user=%s, page=%d, limit=%d", userID, page, limit)

	filter := domain.BookingFilter{UserID: &userID}
	_, filter.Limit, filter.Offset = domain.Page(page, limit)

	return s.list(ctx, "ListMine", filter)
}

// Update частично обновляет бронирование.
// Изменить согласие с условиями нельзя никаким значением.
func (s *Service) Update(
	ctx context.Context,
	principal Principal,
	rawID string,
	req *models.UpdateBookingRequest,
) (*models.BookingResponse, error) {
	s.logger.Info("Update: booking id=%s by user=%s", rawID, principal.ID())

	// 1. Проверяем ID
	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("Update: invalid id=%q", rawID)
		return nil, err
	}

	// 2. Согласие с условиями неизменяемо
	if req.TermsAccepted {
		s.logger.Warn("Update: attempt to change termsAccepted on booking id=%s", id)
		return nil, invalid("termsAccepted", msgTermsImmutable)
	}

	// 3. Собираем и валидируем изменения
	upd, err := s.buildUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for booking id=%s: %v", id, err)
		return nil, err
	}
	if upd.IsEmpty() {
		s.logger.Warn("Update: no fields to update for booking id=%s", id)
		return nil, invalid("", msgNoFields)
	}

	// 4. Проверяем существование и права доступа
	booking, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}
	if err := checkAccess(booking, principal); err != nil {
		s.logger.Warn("Update: access denied for user=%s to booking id=%s", principal.ID(), id)
		return nil, err
	}

	// 5. Сохраняем
	updated, err := s.bookingRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s disappeared before update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking id=%s updated", id)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование. Некорректный ID отклоняется до обращения к БД.
func (s *Service) Delete(ctx context.Context, principal Principal, rawID string) error {
	s.logger.Info("Delete: booking id=%s by user=%s", rawID, principal.ID())

	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("Delete: invalid id=%q", rawID)
		return err
	}

	booking, err := s.get(ctx, "Delete", id)
	if err != nil {
		return err
	}
	if err := checkAccess(booking, principal); err != nil {
		s.logger.Warn("Delete: access denied for user=%s to booking id=%s", principal.ID(), id)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingFilter) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: found %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// textField необязательное текстовое поле, которое не может быть пустым, если прислано
type textField struct {
	field   string
	value   *string
	message string
	dst     **string
}

// buildUpdate переводит запрос в domain.BookingUpdate, проверяя и
// нормализуя каждое присланное поле
func (s *Service) buildUpdate(req *models.UpdateBookingRequest) (domain.BookingUpdate, error) {
	var upd domain.BookingUpdate

	fields := []textField{
		{"firstName", req.FirstName, msgFirstNameMissing, &upd.FirstName},
		{"lastName", req.LastName, msgLastNameMissing, &upd.LastName},
	}
	if req.Address != nil {
		fields = append(fields,
			textField{"address.street", req.Address.Street, msgStreetMissing, &upd.Street},
			textField{"address.postalCode", req.Address.PostalCode, msgPostalMissing, &upd.PostalCode},
			textField{"address.city", req.Address.City, msgCityMissing, &upd.City},
		)
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return upd, invalid(f.field, f.message)
		}
		*f.dst = &v
	}

	if req.Phone != nil {
		if err := domain.ValidatePhone(*req.Phone); err != nil {
			return upd, invalid("phone", err.Error())
		}
		phone := domain.NormalizePhone(*req.Phone)
		upd.Phone = &phone
	}

	if req.Email != nil {
		email := domain.NormalizeEmail(*req.Email)
		if !domain.IsValidEmail(email) {
			return upd, invalid("email", domain.ErrEmailInvalid.Error())
		}
		upd.Email = &email
	}

	if req.Mode != nil {
		mode := domain.BookingMode(*req.Mode)
		if !mode.IsValid() {
			return upd, invalid("mode", msgInvalidMode)
		}
		upd.Mode = &mode
	}

	if req.ScheduledAt != nil {
		at, err := domain.ParseTimestamp(*req.ScheduledAt, s.location)
		if err != nil {
			return upd, invalid("scheduledAt", msgInvalidDate)
		}
		upd.ScheduledAt = &at
	}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.IsValid() {
			return upd, invalid("status", msgInvalidStatus)
		}
		upd.Status = &status
	}

	return upd, nil
}

// checkAccess пропускает администратора и владельца бронирования
func checkAccess(booking *domain.Booking, principal Principal) error {
	if principal.Role() == domain.RoleAdmin {
		return nil
	}
	if booking.IsOwnedBy(principal.ID(), principal.Email()) {
		return nil
	}
	return ErrAccessDenied
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidID, invalid("id", msgInvalidID))
	}
	return id, nil
}
