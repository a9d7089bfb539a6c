package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// AttendanceService drives the per-day check-in state machine.
type AttendanceService interface {
	CheckIn(ctx context.Context, actor Actor) (*domain.AttendanceRecord, error)
	CheckOut(ctx context.Context, actor Actor) (*domain.AttendanceRecord, error)
	// Filter lists records matching all supplied predicates. Employees are
	// scoped to their own records; admins may query anyone.
	Filter(ctx context.Context, actor Actor, filter AttendanceFilter) ([]*domain.AttendanceRecord, error)
}
