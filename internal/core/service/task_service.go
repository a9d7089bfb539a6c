package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// TaskService implements the task-table use cases. Rows carry stable ids;
// positional selection from the UI is translated onto ids against the
// current table order before any mutation.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) AddTask(ctx context.Context, input ports.AddTaskInput) (*domain.Task, error) {
	if input.Actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: task name cannot be empty", domain.ErrValidation)
	}
	if !domain.ValidPriority(input.Priority) {
		return nil, fmt.Errorf("%w: priority must be High, Medium or Low", domain.ErrValidation)
	}
	if !domain.ValidEmployeeRole(input.EmployeeRole) {
		return nil, fmt.Errorf("%w: employee role must be Manager, Staff or Intern", domain.ErrValidation)
	}

	status := domain.TaskToBeDone
	if input.Status != "" {
		normalized, ok := domain.NormalizeTaskStatus(input.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown task status %q", domain.ErrValidation, input.Status)
		}
		status = normalized
	}

	task := &domain.Task{
		ID:           uuid.NewString(),
		Name:         name,
		Priority:     input.Priority,
		EmployeeName: input.EmployeeName,
		EmployeeRole: input.EmployeeRole,
		Status:       status,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", task.ID).Str("employee", task.EmployeeName).Msg("task added")
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.List(ctx)
}

// SearchTasks matches employee names case-insensitively by substring. An
// empty result is a valid, reportable outcome.
func (s *TaskService) SearchTasks(ctx context.Context, namePattern string) ([]*domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(namePattern)
	matched := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.EmployeeName), needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, input ports.UpdateTaskStatusInput) (*domain.Task, error) {
	if input.Actor.Role != domain.RoleEmployee {
		return nil, domain.ErrForbidden
	}

	task, err := s.resolve(ctx, input.Selector)
	if err != nil {
		return nil, err
	}

	status, ok := domain.NormalizeTaskStatus(input.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown task status %q", domain.ErrValidation, input.Status)
	}
	task.Status = status
	if input.StartDate != "" {
		task.StartDate = input.StartDate
	}
	if input.EndDate != "" {
		task.EndDate = input.EndDate
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	s.log.Info().Str("task_id", task.ID).Str("status", string(task.Status)).Msg("task updated")
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, actor ports.Actor, selector string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	task, err := s.resolve(ctx, selector)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, task.ID)
}

func (s *TaskService) DeleteAllTasks(ctx context.Context, actor ports.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	s.log.Info().Str("deleted_by", actor.Username).Msg("all tasks deleted")
	return s.repo.DeleteAll(ctx)
}

// resolve maps a selector onto a task: first as a stable id, then as a
// 0-based position in the current table order. Out-of-range positions are a
// NotFound condition, never a panic.
func (s *TaskService) resolve(ctx context.Context, selector string) (*domain.Task, error) {
	if task, err := s.repo.FindByID(ctx, selector); err == nil {
		return task, nil
	}

	idx, err := strconv.Atoi(selector)
	if err != nil || idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if idx >= len(tasks) {
		return nil, domain.ErrTaskNotFound
	}
	return tasks[idx], nil
}
