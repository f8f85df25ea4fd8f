package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/heal-booking-service/internal/domain"
	userRepo "github.com/m04kA/heal-booking-service/internal/infra/storage/user"
	"github.com/m04kA/heal-booking-service/internal/service/users/models"
)

// createMessages тексты ошибок создания аккаунта.
// Публичная регистрация отвечает по-шведски, админский API по-английски.
type createMessages struct {
	emailRequired    string
	passwordRequired string
	invalidEmail     string
	shortPassword    string
	termsRequired    string
}

var (
	registerMessages = createMessages{
		emailRequired:    "Email och lösenord krävs",
		passwordRequired: "Email och lösenord krävs",
		invalidEmail:     "Ogiltig e-postadress",
		shortPassword:    "Lösenordet måste vara minst 8 tecken",
		termsRequired:    "Du måste godkänna villkoren",
	}
	adminMessages = createMessages{
		emailRequired:    "email is required",
		passwordRequired: "password min length 8",
		invalidEmail:     "invalid email",
		shortPassword:    "password min length 8",
		termsRequired:    "termsAccepted must be true",
	}
)

// Сообщения админского API
const (
	msgIDRequired     = "id is required"
	msgInvalidID      = "invalid id"
	msgTermsImmutable = "termsAccepted cannot be changed via PUT"
	msgInvalidRole    = "role must be either user or admin"
	msgNoFields       = "No fields to update"
)

// Service сервис учетных записей
type Service struct {
	userRepo     UserRepository
	hasher       PasswordHasher
	sessions     SessionIssuer
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	hasher PasswordHasher,
	sessions SessionIssuer,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		sessions:     sessions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Register регистрирует пользователя с ролью user
func (s *Service) Register(ctx context.Context, req *models.CreateUserRequest) (*models.RegisterResponse, error) {
	user, err := s.create(ctx, "Register", req, registerMessages)
	if err != nil {
		return nil, err
	}
	return &models.RegisterResponse{ID: user.ID.String(), Email: user.Email}, nil
}

// Create создает пользователя из админского API
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	user, err := s.create(ctx, "Create", req, adminMessages)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

func (s *Service) create(ctx context.Context, op string, req *models.CreateUserRequest, msgs createMessages) (*domain.User, error) {
	email := domain.NormalizeEmail(req.Email)
	s.logger.Info("%s: email=%s", op, email)

	// 1. Валидация
	switch {
	case email == "":
		return nil, invalid("email", msgs.emailRequired)
	case req.Password == "":
		return nil, invalid("password", msgs.passwordRequired)
	case !domain.IsValidEmail(email):
		return nil, invalid("email", msgs.invalidEmail)
	case len([]rune(req.Password)) < domain.MinPasswordLength:
		return nil, invalid("password", msgs.shortPassword)
	case !req.TermsAccepted:
		return nil, invalid("termsAccepted", msgs.termsRequired)
	}

	var phone *string
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		if err := domain.ValidatePhone(*req.Phone); err != nil {
			return nil, invalid("phone", err.Error())
		}
		normalized := domain.NormalizePhone(*req.Phone)
		phone = &normalized
	}

	// 2. Проверяем, что email свободен
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("%s: email=%s already registered", op, email)
		return nil, ErrEmailExists
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("%s: failed to check email=%s: %v", op, email, err)
		return nil, fmt.Errorf("%w: %s - check email: %v", ErrInternal, op, err)
	}

	// 3. Хешируем пароль
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("%s: failed to hash password: %v", op, err)
		return nil, fmt.Errorf("%w: %s - hash password: %v", ErrInternal, op, err)
	}

	// 4. Сохраняем
	now := s.timeProvider.Now()
	user := &domain.User{
		ID:              uuid.New(),
		Email:           email,
		PasswordHash:    &hash,
		FirstName:       trimmed(req.FirstName),
		LastName:        trimmed(req.LastName),
		Phone:           phone,
		Role:            domain.RoleUser,
		TermsAccepted:   true,
		TermsAcceptedAt: &now,
	}
	if req.Address != nil {
		user.Street = trimmed(req.Address.Street)
		user.PostalCode = trimmed(req.Address.PostalCode)
		user.City = trimmed(req.Address.City)
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailExists) {
			s.logger.Warn("%s: email=%s registered concurrently", op, email)
			return nil, ErrEmailExists
		}
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: user id=%s created", op, created.ID)
	return created, nil
}

// Login проверяет пароль и выпускает токен сессии.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	s.logger.Info("Login: email=%s", email)

	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if user.PasswordHash == nil {
		s.logger.Warn("Login: user id=%s has no password", user.ID)
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(*user.PasswordHash, req.Password)
	if err != nil {
		s.logger.Error("Login: failed to verify password for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - verify password: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Warn("Login: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.sessions.Issue(user)
	if err != nil {
		s.logger.Error("Login: failed to issue session for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s signed in", user.ID)

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: models.SessionUser{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.DisplayName(),
			Role:  string(user.Role),
		},
	}, nil
}

// List возвращает всех пользователей, новые первыми
func (s *Service) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// Update частично обновляет пользователя.
// Пароль перехешируется, согласие с условиями изменить нельзя.
func (s *Service) Update(ctx context.Context, rawID string, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: user id=%s", rawID)

	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("Update: invalid id=%q", rawID)
		return nil, err
	}

	if req.TermsAccepted {
		s.logger.Warn("Update: attempt to change termsAccepted of user id=%s", id)
		return nil, invalid("termsAccepted", msgTermsImmutable)
	}

	upd := domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Address != nil {
		upd.Street = req.Address.Street
		upd.PostalCode = req.Address.PostalCode
		upd.City = req.Address.City
	}

	if req.Phone != nil {
		if err := domain.ValidatePhone(*req.Phone); err != nil {
			return nil, invalid("phone", err.Error())
		}
		phone := domain.NormalizePhone(*req.Phone)
		upd.Phone = &phone
	}

	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, invalid("role", msgInvalidRole)
		}
		upd.Role = &role
	}

	if req.Password != nil {
		if len([]rune(*req.Password)) < domain.MinPasswordLength {
			return nil, invalid("password", adminMessages.shortPassword)
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - hash password: %v", ErrInternal, err)
		}
		upd.PasswordHash = &hash
	}

	if upd.IsEmpty() {
		return nil, invalid("", msgNoFields)
	}

	updated, err := s.userRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: user id=%s updated", id)
	return models.FromDomainUser(updated), nil
}

// Delete удаляет пользователя. Его бронирования остаются гостевыми.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	s.logger.Info("Delete: user id=%s", rawID)

	id, err := parseID(rawID)
	if err != nil {
		s.logger.Warn("Delete: invalid id=%q", rawID)
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%s not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: user id=%s deleted", id)
	return nil
}

// PromoteAdmin выдает роль admin пользователю с указанным email
func (s *Service) PromoteAdmin(ctx context.Context, rawEmail string) (*models.UserResponse, error) {
	email := domain.NormalizeEmail(rawEmail)
	s.logger.Info("PromoteAdmin: email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("PromoteAdmin: email=%s not found", email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("PromoteAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: PromoteAdmin - repository error: %v", ErrInternal, err)
	}

	if user.IsAdmin() {
		s.logger.Info("PromoteAdmin: user id=%s is already admin", user.ID)
		return models.FromDomainUser(user), nil
	}

	role := domain.RoleAdmin
	updated, err := s.userRepo.Update(ctx, user.ID, domain.UserUpdate{Role: &role})
	if err != nil {
		s.logger.Error("PromoteAdmin: repository error for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: PromoteAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PromoteAdmin: user id=%s is now admin", updated.ID)
	return models.FromDomainUser(updated), nil
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

// trimmed обрезает пробелы; пустая строка становится nil
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
