package handler

import "github.com/jobgenix/crm-system/internal/core/domain"

type addTaskRequest struct {
	Task         string `json:"task"          validate:"required"`
	Priority     string `json:"priority"      validate:"required,oneof=High Medium Low"`
	EmployeeName string `json:"employee_name" validate:"required"`
	EmployeeRole string `json:"employee_role" validate:"required,oneof=Manager Staff Intern"`
	Status       string `json:"status"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type updateTaskStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// taskListResponse pairs each task with its current positional index so the
// UI can keep offering row-number selection over stable ids.
type taskListItem struct {
	Index int          `json:"index"`
	Task  *domain.Task `json:"task"`
}

type taskListResponse struct {
	Data  []taskListItem `json:"data"`
	Count int            `json:"count"`
}
