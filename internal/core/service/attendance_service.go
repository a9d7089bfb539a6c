package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// AttendanceService drives the per-day state machine:
// no record → Checked In → Checked Out, nothing further that day.
type AttendanceService struct {
	repo ports.AttendanceRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAttendanceService(repo ports.AttendanceRepository, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, log: log, now: time.Now}
}

func (s *AttendanceService) CheckIn(ctx context.Context, actor ports.Actor) (*domain.AttendanceRecord, error) {
	now := s.now()
	today := now.Format(domain.DateLayout)

	if _, err := s.repo.FindByUserAndDate(ctx, actor.Username, today); err == nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	rec := &domain.AttendanceRecord{
		ID:       uuid.NewString(),
		Username: actor.Username,
		Date:     today,
		CheckIn:  now,
		Status:   domain.CheckedIn,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", actor.Username).Str("date", today).Msg("checked in")
	return rec, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, actor ports.Actor) (*domain.AttendanceRecord, error) {
	now := s.now()
	today := now.Format(domain.DateLayout)

	rec, err := s.repo.FindByUserAndDate(ctx, actor.Username, today)
	if err != nil {
		return nil, domain.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return nil, domain.ErrAlreadyCheckedOut
	}

	rec.CheckOut = &now
	rec.Status = domain.CheckedOut
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", actor.Username).Str("date", today).Msg("checked out")
	return rec, nil
}

// Filter lists attendance records. Employees only ever see their own rows;
// the username predicate is forced to the actor for them.
func (s *AttendanceService) Filter(ctx context.Context, actor ports.Actor, filter ports.AttendanceFilter) ([]*domain.AttendanceRecord, error) {
	if actor.Role != domain.RoleAdmin {
		filter.Username = actor.Username
	}
	return s.repo.Filter(ctx, filter)
}
