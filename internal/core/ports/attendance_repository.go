package ports

import (
	"context"
	"time"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// AttendanceFilter carries the optional predicates for listing attendance
// records. Zero values mean "no constraint".
type AttendanceFilter struct {
	Username string
	From     time.Time
	To       time.Time
}

// AttendanceRepository defines persistence for the attendance table.
// (Username, Date) is unique.
type AttendanceRepository interface {
	FindByUserAndDate(ctx context.Context, username, date string) (*domain.AttendanceRecord, error)
	Create(ctx context.Context, rec *domain.AttendanceRecord) error
	Update(ctx context.Context, rec *domain.AttendanceRecord) error
	Filter(ctx context.Context, filter AttendanceFilter) ([]*domain.AttendanceRecord, error)
}
