package csvstore

import (
	"context"
	"sync"
	"time"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

var attendanceSchema = []string{"ID", "Username", "Date", "Check In", "Check Out", "Status"}

// AttendanceRepository persists the attendance table. (Username, Date) is
// unique; Create enforces it under the repository lock.
type AttendanceRepository struct {
	mu    sync.Mutex
	path  string
	table *Table
}

func NewAttendanceRepository(path string) (*AttendanceRepository, error) {
	table, _, err := Load(path, attendanceSchema)
	if err != nil {
		return nil, err
	}
	return &AttendanceRepository{path: path, table: table}, nil
}

func attendanceFromRow(row []string) *domain.AttendanceRecord {
	rec := &domain.AttendanceRecord{
		ID:       row[0],
		Username: row[1],
		Date:     row[2],
		Status:   domain.AttendanceStatus(row[5]),
	}
	if ts, err := time.ParseInLocation(auditTimeLayout, row[3], time.Local); err == nil {
		rec.CheckIn = ts
	}
	if row[4] != "" {
		if ts, err := time.ParseInLocation(auditTimeLayout, row[4], time.Local); err == nil {
			rec.CheckOut = &ts
		}
	}
	return rec
}

func attendanceToRow(rec *domain.AttendanceRecord) []string {
	checkOut := ""
	if rec.CheckOut != nil {
		checkOut = rec.CheckOut.Format(auditTimeLayout)
	}
	return []string{rec.ID, rec.Username, rec.Date, rec.CheckIn.Format(auditTimeLayout), checkOut, string(rec.Status)}
}

func (r *AttendanceRepository) FindByUserAndDate(_ context.Context, username, date string) (*domain.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.table.Rows {
		if row[1] == username && row[2] == date {
			return attendanceFromRow(row), nil
		}
	}
	return nil, domain.ErrNotCheckedIn
}

func (r *AttendanceRepository) Create(_ context.Context, rec *domain.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.table.Rows {
		if row[1] == rec.Username && row[2] == rec.Date {
			return domain.ErrAlreadyCheckedIn
		}
	}
	r.table.Rows = append(r.table.Rows, attendanceToRow(rec))
	return Save(r.path, r.table)
}

func (r *AttendanceRepository) Update(_ context.Context, rec *domain.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.table.Rows {
		if row[0] == rec.ID {
			r.table.Rows[i] = attendanceToRow(rec)
			return Save(r.path, r.table)
		}
	}
	return domain.ErrNotCheckedIn
}

// Filter returns records matching every supplied predicate, in table order.
// The date range is compared on parsed calendar days, not raw strings.
func (r *AttendanceRepository) Filter(_ context.Context, filter ports.AttendanceFilter) ([]*domain.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []*domain.AttendanceRecord
	for _, row := range r.table.Rows {
		if filter.Username != "" && row[1] != filter.Username {
			continue
		}
		day, err := time.ParseInLocation(domain.DateLayout, row[2], time.Local)
		if err != nil {
			continue
		}
		if !filter.From.IsZero() && day.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && day.After(filter.To) {
			continue
		}
		records = append(records, attendanceFromRow(row))
	}
	return records, nil
}

func (r *AttendanceRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Save(r.path, r.table)
}
