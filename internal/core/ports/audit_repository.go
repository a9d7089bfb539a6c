package ports

import (
	"context"
	"time"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// AuditFilter carries the optional predicates for querying the login/logout
// log. Zero values mean "no constraint". Comparison is chronological; the
// repository owns the on-disk timestamp layout.
type AuditFilter struct {
	Username string
	From     time.Time
	To       time.Time
}

// AuditRepository is the append-only login/logout log. Append conceptually
// appends but, like every table here, is persisted by a full rewrite.
type AuditRepository interface {
	Append(ctx context.Context, event *domain.AuditEvent) error
	Filter(ctx context.Context, filter AuditFilter) ([]*domain.AuditEvent, error)
	Clear(ctx context.Context) error
}
