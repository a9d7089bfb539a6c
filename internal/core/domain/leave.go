package domain

import "time"

// LeaveStatus represents the decision state of a leave application.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveAccepted LeaveStatus = "Accepted"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveApplication is one row of the leave table. New applications always
// start Pending; only an admin decision moves them to Accepted or Rejected.
type LeaveApplication struct {
	ID           string      `json:"id"`
	EmployeeName string      `json:"employee_name"`
	LeaveType    string      `json:"leave_type"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Status       LeaveStatus `json:"status"`
	DecidedAt    *time.Time  `json:"decided_at,omitempty"`
}
