package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// LeaveRepository defines persistence for the leave table.
type LeaveRepository interface {
	List(ctx context.Context) ([]*domain.LeaveApplication, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveApplication, error)
	Create(ctx context.Context, leave *domain.LeaveApplication) error
	Update(ctx context.Context, leave *domain.LeaveApplication) error
	ListByEmployee(ctx context.Context, employeeName string) ([]*domain.LeaveApplication, error)
}
