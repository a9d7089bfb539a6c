package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// TaskRepository defines persistence for the task table. Rows are ordered;
// List returns them in table order so positional selectors can be resolved
// against a stable snapshot.
type TaskRepository interface {
	List(ctx context.Context) ([]*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
