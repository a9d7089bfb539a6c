package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// RegisterInput carries a registration request. Actor is nil for the public
// self-registration form; creating an admin account requires an admin actor.
type RegisterInput struct {
	Username string
	Password string
	Role     string
	Actor    *Actor
}

// AuthService implements login, logout, registration and account management.
type AuthService interface {
	// Login authenticates by exact username/password match, records a Login
	// audit event and returns a signed session token with the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout records a Logout audit event for the actor.
	Logout(ctx context.Context, actor Actor) error
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// DeleteUser removes an account. Admin only.
	DeleteUser(ctx context.Context, actor Actor, username string) error
	// ListUsers returns every account including plaintext passwords. Admin only.
	ListUsers(ctx context.Context, actor Actor) ([]*domain.User, error)
}
