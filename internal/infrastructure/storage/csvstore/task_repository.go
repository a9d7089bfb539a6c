package csvstore

import (
	"context"
	"sync"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

var taskSchema = []string{"ID", "Task", "Priority", "Employee Name", "Employee Role", "Status", "Start Date", "End Date"}

// TaskRepository persists the task table. Row order is the table order;
// deleting a row shifts every later row up by one, which is why rows carry a
// stable id and position is only ever resolved against a fresh List.
type TaskRepository struct {
	mu    sync.Mutex
	path  string
	table *Table
}

func NewTaskRepository(path string) (*TaskRepository, error) {
	table, _, err := Load(path, taskSchema)
	if err != nil {
		return nil, err
	}
	return &TaskRepository{path: path, table: table}, nil
}

func taskFromRow(row []string) *domain.Task {
	return &domain.Task{
		ID:           row[0],
		Name:         row[1],
		Priority:     row[2],
		EmployeeName: row[3],
		EmployeeRole: row[4],
		Status:       domain.TaskStatus(row[5]),
		StartDate:    row[6],
		EndDate:      row[7],
	}
}

func taskToRow(t *domain.Task) []string {
	return []string{t.ID, t.Name, t.Priority, t.EmployeeName, t.EmployeeRole, string(t.Status), t.StartDate, t.EndDate}
}

func (r *TaskRepository) List(_ context.Context) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(r.table.Rows))
	for _, row := range r.table.Rows {
		tasks = append(tasks, taskFromRow(row))
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.table.Rows {
		if row[0] == id {
			return taskFromRow(row), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Rows = append(r.table.Rows, taskToRow(task))
	return Save(r.path, r.table)
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.table.Rows {
		if row[0] == task.ID {
			r.table.Rows[i] = taskToRow(task)
			return Save(r.path, r.table)
		}
	}
	return domain.ErrTaskNotFound
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.table.Rows {
		if row[0] == id {
			r.table.Rows = append(r.table.Rows[:i], r.table.Rows[i+1:]...)
			return Save(r.path, r.table)
		}
	}
	return domain.ErrTaskNotFound
}

// DeleteAll empties the table but preserves the schema header on disk.
func (r *TaskRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table.Rows = nil
	return Save(r.path, r.table)
}

func (r *TaskRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Save(r.path, r.table)
}
