package domain

import "strings"

// TaskStatus represents the lifecycle state of an assigned task.
type TaskStatus string

const (
	TaskToBeDone     TaskStatus = "To Be Done"
	TaskOnTrack      TaskStatus = "On Track"
	TaskAtRisk       TaskStatus = "At Risk"
	TaskDelayed      TaskStatus = "Delayed"
	TaskJustNotified TaskStatus = "Just Notified"
	TaskNotDone      TaskStatus = "Not Done"
	TaskDone         TaskStatus = "Done"
)

// TaskStatuses is the canonical enumeration, in board order.
var TaskStatuses = []TaskStatus{
	TaskToBeDone, TaskOnTrack, TaskAtRisk, TaskDelayed,
	TaskJustNotified, TaskNotDone, TaskDone,
}

// Task priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Employee roles a task can be assigned under.
const (
	EmployeeRoleManager = "Manager"
	EmployeeRoleStaff   = "Staff"
	EmployeeRoleIntern  = "Intern"
)

// NormalizeTaskStatus maps a raw label (including the legacy spellings
// "To be Done" and "At risk") onto the canonical enumeration. The second
// return value is false when the label is not recognised.
func NormalizeTaskStatus(raw string) (TaskStatus, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range TaskStatuses {
		if strings.ToLower(string(s)) == folded {
			return s, true
		}
	}
	return "", false
}

// ValidPriority reports whether p is an allowed priority label.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ValidEmployeeRole reports whether r is an allowed assignment role.
func ValidEmployeeRole(r string) bool {
	return r == EmployeeRoleManager || r == EmployeeRoleStaff || r == EmployeeRoleIntern
}

// Task is one row of the task table. ID is a stable identifier assigned at
// creation and never reused; the row's position in the table may shift when
// rows above it are deleted.
type Task struct {
	ID           string     `json:"id"`
	Name         string     `json:"task"`
	Priority     string     `json:"priority"`
	EmployeeName string     `json:"employee_name"`
	EmployeeRole string     `json:"employee_role"`
	Status       TaskStatus `json:"status"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
}
