package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// AuthService implements login, logout, registration and account management
// against the identity table. Authentication is an exact plaintext match by
// design; the caller is never told whether the username or the password was
// wrong.
type AuthService struct {
	users     ports.UserRepository
	audit     ports.AuditRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(users ports.UserRepository, audit ports.AuditRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Unknown user and wrong password are indistinguishable to the caller.
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	s.recordAction(ctx, username, domain.ActionLogin)

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, actor ports.Actor) error {
	s.recordAction(ctx, actor.Username, domain.ActionLogout)
	return nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", domain.ErrValidation)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: role must be admin or employee", domain.ErrValidation)
	}
	// Self-registration of admin accounts is gated: only an existing admin
	// may create another one.
	if input.Role == domain.RoleAdmin && (input.Actor == nil || input.Actor.Role != domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	user := &domain.User{Username: username, Password: password, Role: input.Role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", input.Role).Msg("account registered")
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, actor ports.Actor, username string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Str("deleted_by", actor.Username).Msg("account deleted")
	return nil
}

func (s *AuthService) ListUsers(ctx context.Context, actor ports.Actor) ([]*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

// recordAction appends a login/logout event. Audit failures are logged and
// swallowed so a full audit file never locks anyone out.
func (s *AuthService) recordAction(ctx context.Context, username, action string) {
	event := &domain.AuditEvent{Username: username, Action: action, Timestamp: s.now()}
	if err := s.audit.Append(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("username", username).Str("action", action).Msg("failed to record audit event")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
