package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// ApplyLeaveInput carries a new leave application. The stored status is
// always Pending regardless of what the caller submits.
type ApplyLeaveInput struct {
	Actor     Actor
	LeaveType string
	StartDate string
	EndDate   string
}

// DecideLeaveInput accepts or rejects one pending application. Selector is a
// stable id or a positional index, as for tasks.
type DecideLeaveInput struct {
	Actor    Actor
	Selector string
	Accept   bool
}

// LeaveService defines use-case operations for leave applications. Deciding
// an application notifies the employee best-effort: delivery failure never
// rolls back the status change.
type LeaveService interface {
	Apply(ctx context.Context, input ApplyLeaveInput) (*domain.LeaveApplication, error)
	Decide(ctx context.Context, input DecideLeaveInput) (*domain.LeaveApplication, error)
	StatusFor(ctx context.Context, employeeName string) ([]*domain.LeaveApplication, error)
	ListAll(ctx context.Context, actor Actor) ([]*domain.LeaveApplication, error)
}
