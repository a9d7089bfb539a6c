package csvstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

var leaveSchema = []string{"ID", "Employee Name", "Leave Type", "Start Date", "End Date", "Status", "Decided At"}

// LeaveRepository persists the leave-application table.
type LeaveRepository struct {
	mu    sync.Mutex
	path  string
	table *Table
}

func NewLeaveRepository(path string) (*LeaveRepository, error) {
	table, _, err := Load(path, leaveSchema)
	if err != nil {
		return nil, err
	}
	return &LeaveRepository{path: path, table: table}, nil
}

func leaveFromRow(row []string) *domain.LeaveApplication {
	l := &domain.LeaveApplication{
		ID:           row[0],
		EmployeeName: row[1],
		LeaveType:    row[2],
		StartDate:    row[3],
		EndDate:      row[4],
		Status:       domain.LeaveStatus(row[5]),
	}
	if row[6] != "" {
		if ts, err := time.ParseInLocation(auditTimeLayout, row[6], time.Local); err == nil {
			l.DecidedAt = &ts
		}
	}
	return l
}

func leaveToRow(l *domain.LeaveApplication) []string {
	decided := ""
	if l.DecidedAt != nil {
		decided = l.DecidedAt.Format(auditTimeLayout)
	}
	return []string{l.ID, l.EmployeeName, l.LeaveType, l.StartDate, l.EndDate, string(l.Status), decided}
}

func (r *LeaveRepository) List(_ context.Context) ([]*domain.LeaveApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	leaves := make([]*domain.LeaveApplication, 0, len(r.table.Rows))
	for _, row := range r.table.Rows {
		leaves = append(leaves, leaveFromRow(row))
	}
	return leaves, nil
}

func (r *LeaveRepository) FindByID(_ context.Context, id string) (*domain.LeaveApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.table.Rows {
		if row[0] == id {
			return leaveFromRow(row), nil
		}
	}
	return nil, domain.ErrLeaveNotFound
}

func (r *LeaveRepository) Create(_ context.Context, leave *domain.LeaveApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Rows = append(r.table.Rows, leaveToRow(leave))
	return Save(r.path, r.table)
}

func (r *LeaveRepository) Update(_ context.Context, leave *domain.LeaveApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.table.Rows {
		if row[0] == leave.ID {
			r.table.Rows[i] = leaveToRow(leave)
			return Save(r.path, r.table)
		}
	}
	return domain.ErrLeaveNotFound
}

// ListByEmployee matches the employee name case-insensitively and exactly.
func (r *LeaveRepository) ListByEmployee(_ context.Context, employeeName string) ([]*domain.LeaveApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var leaves []*domain.LeaveApplication
	for _, row := range r.table.Rows {
		if strings.EqualFold(row[1], employeeName) {
			leaves = append(leaves, leaveFromRow(row))
		}
	}
	return leaves, nil
}

func (r *LeaveRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Save(r.path, r.table)
}
