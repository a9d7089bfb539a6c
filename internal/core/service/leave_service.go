package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// NotificationQueue abstracts the fire-and-forget notification dispatcher.
// Enqueue never blocks on delivery and never reports delivery failure: the
// status transition must not be coupled to the mail relay.
type NotificationQueue interface {
	Enqueue(n ports.Notification)
}

// LeaveService implements leave applications and decisions.
type LeaveService struct {
	repo  ports.LeaveRepository
	queue NotificationQueue
	log   zerolog.Logger
	now   func() time.Time
}

func NewLeaveService(repo ports.LeaveRepository, queue NotificationQueue, log zerolog.Logger) *LeaveService {
	return &LeaveService{repo: repo, queue: queue, log: log, now: time.Now}
}

// Apply files a new application. Whatever the caller submits, the stored
// status is Pending.
func (s *LeaveService) Apply(ctx context.Context, input ports.ApplyLeaveInput) (*domain.LeaveApplication, error) {
	if input.Actor.Role != domain.RoleEmployee {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(input.LeaveType) == "" {
		return nil, fmt.Errorf("%w: leave type cannot be empty", domain.ErrValidation)
	}
	if input.StartDate == "" || input.EndDate == "" {
		return nil, fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}

	leave := &domain.LeaveApplication{
		ID:           uuid.NewString(),
		EmployeeName: input.Actor.Username,
		LeaveType:    input.LeaveType,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       domain.LeavePending,
	}
	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, err
	}

	s.log.Info().Str("leave_id", leave.ID).Str("employee", leave.EmployeeName).Msg("leave application filed")
	return leave, nil
}

// Decide accepts or rejects an application and queues a notification to the
// employee. Delivery is best-effort: once the new status is persisted the
// decision stands regardless of what happens to the email.
func (s *LeaveService) Decide(ctx context.Context, input ports.DecideLeaveInput) (*domain.LeaveApplication, error) {
	if input.Actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	leave, err := s.resolve(ctx, input.Selector)
	if err != nil {
		return nil, err
	}

	if input.Accept {
		leave.Status = domain.LeaveAccepted
	} else {
		leave.Status = domain.LeaveRejected
	}
	decidedAt := s.now()
	leave.DecidedAt = &decidedAt

	if err := s.repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	s.queue.Enqueue(ports.Notification{
		Recipient: leave.EmployeeName,
		Subject:   "Leave application " + strings.ToLower(string(leave.Status)),
		Body: fmt.Sprintf("Your %s leave from %s to %s has been %s.",
			leave.LeaveType, leave.StartDate, leave.EndDate, strings.ToLower(string(leave.Status))),
		Key: leave.ID + ":" + string(leave.Status),
	})

	s.log.Info().
		Str("leave_id", leave.ID).
		Str("status", string(leave.Status)).
		Str("decided_by", input.Actor.Username).
		Msg("leave application decided")
	return leave, nil
}

func (s *LeaveService) StatusFor(ctx context.Context, employeeName string) ([]*domain.LeaveApplication, error) {
	return s.repo.ListByEmployee(ctx, employeeName)
}

func (s *LeaveService) ListAll(ctx context.Context, actor ports.Actor) ([]*domain.LeaveApplication, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *LeaveService) resolve(ctx context.Context, selector string) (*domain.LeaveApplication, error) {
	if leave, err := s.repo.FindByID(ctx, selector); err == nil {
		return leave, nil
	}

	idx, err := strconv.Atoi(selector)
	if err != nil || idx < 0 {
		return nil, domain.ErrLeaveNotFound
	}
	leaves, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if idx >= len(leaves) {
		return nil, domain.ErrLeaveNotFound
	}
	return leaves[idx], nil
}
