package heals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
	healRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/heal"
	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
)

// Сообщения об ошибках для администратора
const (
	msgIDRequired    = "id is required (query ?id= or in body)"
	msgInvalidID     = "invalid id"
	msgPriceRequired = "price (number) is required"
	msgPriceNegative = "price must be >= 0"
	msgModeRequired  = "mode is required (onsite|online|hybrid)"
	msgModeInvalid   = "mode must be either onsite, online or hybrid"
	msgTagsRequired  = "tags (non-empty array) is required"
	msgSlugGenerate  = "slug could not be generated"
	msgSlugTooLong   = "slug cannot exceed 120 characters"
	msgSlugImmutable = "slug cannot be changed"
	msgNoFields      = "No fields to update"
	msgFieldRequired = "%s is required"
	msgFieldTooLong  = "%s cannot exceed %d characters"
)

// Service сервис каталога услуг
type Service struct {
	healRepo HealRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(healRepo HealRepository, logger Logger) *Service {
	return &Service{
		healRepo: healRepo,
		logger:   logger,
	}
}

// Create создает услугу.
// Явно указанный slug должен быть свободен, иначе ErrSlugExists.
// Slug из title подбирается автоматически: base, base-2, ...
func (s *Service) Create(ctx context.Context, req *models.CreateHealRequest) (*models.HealResponse, error) {
	s.logger.Info("Create: title=%q", req.Title)

	// 1. Валидация полей
	heal, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Slug
	explicit := req.Slug != nil && strings.TrimSpace(*req.Slug) != ""
	source := heal.Title
	if explicit {
		source = *req.Slug
	}
	base := domain.Slugify(source)
	if base == "" {
		s.logger.Warn("Create: slug could not be generated from %q", source)
		return nil, invalid("slug", msgSlugGenerate)
	}
	if utf8.RuneCountInString(base) > domain.MaxHealSlugLength {
		return nil, invalid("slug", msgSlugTooLong)
	}

	if explicit {
		exists, err := s.healRepo.SlugExists(ctx, base)
		if err != nil {
			s.logger.Error("Create: failed to check slug=%s: %v", base, err)
			return nil, fmt.Errorf("%w: Create - check slug: %v", ErrInternal, err)
		}
		if exists {
			s.logger.Warn("Create: slug=%s already exists", base)
			return nil, ErrSlugExists
		}
		heal.Slug = base
	} else {
		taken, err := s.healRepo.SlugsWithBase(ctx, base)
		if err != nil {
			s.logger.Error("Create: failed to list slugs for base=%s: %v", base, err)
			return nil, fmt.Errorf("%w: Create - list slugs: %v", ErrInternal, err)
		}
		heal.Slug = nextSlug(base, taken)
	}

	// 3. Сохраняем. Уникальный индекс по slug остается последней защитой от гонки.
	heal.ID = uuid.New()
	created, err := s.healRepo.Create(ctx, heal)
	if err != nil {
		if errors.Is(err, healRepo.ErrSlugExists) {
			s.logger.Warn("Create: slug=%s taken concurrently", heal.Slug)
			return nil, ErrSlugExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: heal id=%s slug=%s created", created.ID, created.Slug)
	return models.FromDomainHeal(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, rawID string) (*models.HealResponse, error) {
	s.logger.Info("GetByID: fetching heal id=%s", rawID)

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	heal, err := s.healRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, healRepo.ErrHealNotFound) {
			s.logger.Warn("GetByID: heal id=%s not found", id)
			return nil, ErrHealNotFound
		}
		s.logger.Error("GetByID: repository error for heal id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHeal(heal), nil
}

// List возвращает все услуги, новые первыми
func (s *Service) List(ctx context.Context) ([]models.HealResponse, error) {
	heals, err := s.healRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d heals", len(heals))
	return models.FromDomainHealList(heals), nil
}

// Update частично обновляет услугу. Slug изменить нельзя.
func (s *Service) Update(ctx context.Context, rawID string, req *models.UpdateHealRequest) (*models.HealResponse, error) {
	s.logger.Info("Update: heal id=%s", rawID)

	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("Update: invalid id=%q", rawID)
		return nil, err
	}

	if req.Slug != nil {
		s.logger.Warn("Update: attempt to change slug of heal id=%s", id)
		return nil, invalid("slug", msgSlugImmutable)
	}

	upd, err := validateUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for heal id=%s: %v", id, err)
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, invalid("", msgNoFields)
	}

	updated, err := s.healRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, healRepo.ErrHealNotFound) {
			s.logger.Warn("Update: heal id=%s not found", id)
			return nil, ErrHealNotFound
		}
		s.logger.Error("Update: repository error for heal id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: heal id=%s updated", id)
	return models.FromDomainHeal(updated), nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, rawID string) error {
	s.logger.Info("Delete: heal id=%s", rawID)

	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("Delete: invalid id=%q", rawID)
		return err
	}

	if err := s.healRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, healRepo.ErrHealNotFound) {
			s.logger.Warn("Delete: heal id=%s not found", id)
			return ErrHealNotFound
		}
		if errors.Is(err, healRepo.ErrHealInUse) {
			s.logger.Warn("Delete: heal id=%s has bookings", id)
			return ErrHealInUse
		}
		s.logger.Error("Delete: repository error for heal id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: heal id=%s deleted", id)
	return nil
}

func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidID, invalid("id", msgIDRequired))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidID, invalid("id", msgInvalidID))
	}
	return id, nil
}
