// Package services содержит логику бизнес-уровня для аутентификации
// и управления учётными записями администраторов.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/soccars/car-rental-admin/internal/lib/jwt"
	"github.com/soccars/car-rental-admin/internal/lib/password"
	"github.com/soccars/car-rental-admin/internal/models"
	"github.com/soccars/car-rental-admin/internal/storage/repository"
)

// Ошибки авторизации. Обработчики превращают их в HTTP-статусы:
// неверные данные и непригодный токен — 401, отключённый или
// не-администратор — 403, занятый email — 400.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInactiveUser       = errors.New("inactive user")
	ErrNotAdmin           = errors.New("admin privileges required")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с присвоенным ID.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UserExistsByEmail проверяет занятость email.
	UserExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListAdmins возвращает всех администраторов.
	ListAdmins(ctx context.Context) ([]*models.User, error)
}

// AuthService отвечает за проверку учётных данных, выпуск и проверку JWT,
// а также за единственный путь создания пользователей — онбординг администраторов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Authenticate проверяет пару email/пароль и возвращает пользователя.
// При неизвестном email и при неверном пароле возвращается одна и та же
// ошибка ErrInvalidCredentials, чтобы не раскрывать, какая часть неверна.
func (s *AuthService) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken выпускает токен доступа с субъектом — email пользователя.
// Срок действия задаётся конфигурацией jwt.Maker.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	return s.jwtMaker.GenerateToken(user.Email)
}

// ResolveCurrentUser проверяет токен и возвращает пользователя из его субъекта.
// Непригодный токен даёт ErrInvalidToken, отсутствующий в базе субъект —
// ErrUserNotFound.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	user, err := s.users.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// RequireActiveAdmin — единая проверка для всех защищённых операций:
// токен валиден, учётная запись активна, пользователь — администратор.
func (s *AuthService) RequireActiveAdmin(ctx context.Context, token string) (*models.User, error) {
	user, err := s.ResolveCurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	if !user.IsAdmin {
		return nil, ErrNotAdmin
	}
	return user, nil
}

// RegisterAdmin создает нового администратора с хэшированием пароля.
// Занятый email даёт ErrEmailTaken; email уникален для всех пользователей.
func (s *AuthService) RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	exists, err := s.users.UserExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		PasswordHash: hashed,
		IsAdmin:      true, // единственный путь создания, всегда администратор
		IsActive:     true,
	}
	return s.users.CreateUser(ctx, user)
}

// ListAdmins возвращает всех администраторов системы.
func (s *AuthService) ListAdmins(ctx context.Context) ([]*models.User, error) {
	return s.users.ListAdmins(ctx)
}
