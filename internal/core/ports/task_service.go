package ports

import (
	"context"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

// AddTaskInput carries all data needed to create a task. Status defaults to
// "To Be Done" when empty; legacy status spellings are normalised.
type AddTaskInput struct {
	Actor        Actor
	Name         string
	Priority     string
	EmployeeName string
	EmployeeRole string
	Status       string
	StartDate    string
	EndDate      string
}

// UpdateTaskStatusInput mutates one task selected by Selector, which is
// either a stable task id or a 0-based positional index into the current
// table order.
type UpdateTaskStatusInput struct {
	Actor     Actor
	Selector  string
	Status    string
	StartDate string // optional, unchanged when empty
	EndDate   string // optional, unchanged when empty
}

// TaskService defines use-case operations for the task table.
type TaskService interface {
	AddTask(ctx context.Context, input AddTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	// SearchTasks matches employee names case-insensitively by substring.
	// An empty result is a valid outcome, not an error.
	SearchTasks(ctx context.Context, namePattern string) ([]*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, input UpdateTaskStatusInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, actor Actor, selector string) error
	DeleteAllTasks(ctx context.Context, actor Actor) error
}
