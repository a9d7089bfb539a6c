package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// AuditService exposes the login/logout log to admins.
type AuditService interface {
	Record(ctx context.Context, username, action string) error
	Filter(ctx context.Context, actor Actor, filter AuditFilter) ([]*domain.AuditEvent, error)
	// Today returns the events recorded on the server's current date.
	Today(ctx context.Context, actor Actor) ([]*domain.AuditEvent, error)
	Clear(ctx context.Context, actor Actor) error
}
