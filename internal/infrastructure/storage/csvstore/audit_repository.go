package csvstore

import (
	"context"
	"sync"
	"time"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

var auditSchema = []string{"Username", "Action", "Timestamp"}

// auditTimeLayout is the fixed on-disk timestamp layout. It sorts lexically
// in chronological order, but filtering never relies on that: rows are parsed
// back to time.Time and compared chronologically. Display formatting is the
// presentation layer's concern.
const auditTimeLayout = "2006-01-02 15:04:05"

// AuditRepository persists the append-only login/logout log. Appending still
// rewrites the whole file, like every other table.
type AuditRepository struct {
	mu    sync.Mutex
	path  string
	table *Table
}

func NewAuditRepository(path string) (*AuditRepository, error) {
	table, _, err := Load(path, auditSchema)
	if err != nil {
		return nil, err
	}
	return &AuditRepository{path: path, table: table}, nil
}

func (r *AuditRepository) Append(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Rows = append(r.table.Rows, []string{
		event.Username,
		event.Action,
		event.Timestamp.Format(auditTimeLayout),
	})
	return Save(r.path, r.table)
}

// Filter returns the events matching every supplied predicate, in log order.
// Rows whose stored timestamp no longer parses are skipped.
func (r *AuditRepository) Filter(_ context.Context, filter ports.AuditFilter) ([]*domain.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []*domain.AuditEvent
	for _, row := range r.table.Rows {
		if filter.Username != "" && row[0] != filter.Username {
			continue
		}
		ts, err := time.ParseInLocation(auditTimeLayout, row[2], time.Local)
		if err != nil {
			continue
		}
		if !filter.From.IsZero() && ts.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && ts.After(filter.To) {
			continue
		}
		events = append(events, &domain.AuditEvent{Username: row[0], Action: row[1], Timestamp: ts})
	}
	return events, nil
}

// Clear empties the log and persists the bare header.
func (r *AuditRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Rows = nil
	return Save(r.path, r.table)
}

func (r *AuditRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Save(r.path, r.table)
}
