package domain

import "time"

// AttendanceStatus is the per-day check-in state machine:
// no record → Checked In → Checked Out, with no further transitions that day.
type AttendanceStatus string

const (
	CheckedIn  AttendanceStatus = "Checked In"
	CheckedOut AttendanceStatus = "Checked Out"
)

// DateLayout is the calendar-day key format for attendance records.
const DateLayout = "2006-01-02"

// AttendanceRecord is one row of the attendance table. (Username, Date) is
// unique; CheckOut is nil until the employee checks out.
type AttendanceRecord struct {
	ID       string           `json:"id"`
	Username string           `json:"username"`
	Date     string           `json:"date"`
	CheckIn  time.Time        `json:"check_in"`
	CheckOut *time.Time       `json:"check_out,omitempty"`
	Status   AttendanceStatus `json:"status"`
}
