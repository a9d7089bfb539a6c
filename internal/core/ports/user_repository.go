package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// UserRepository defines persistence for the identity table.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
