package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// AuditService exposes the login/logout log. Querying and clearing are
// admin-only here as well, not just at the presentation layer.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log, now: time.Now}
}

func (s *AuditService) Record(ctx context.Context, username, action string) error {
	return s.repo.Append(ctx, &domain.AuditEvent{Username: username, Action: action, Timestamp: s.now()})
}

func (s *AuditService) Filter(ctx context.Context, actor ports.Actor, filter ports.AuditFilter) ([]*domain.AuditEvent, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.Filter(ctx, filter)
}

// Today returns the events recorded on the server's current date.
func (s *AuditService) Today(ctx context.Context, actor ports.Actor) ([]*domain.AuditEvent, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	start := s.now()
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return s.repo.Filter(ctx, ports.AuditFilter{From: start, To: start.Add(24*time.Hour - time.Second)})
}

func (s *AuditService) Clear(ctx context.Context, actor ports.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	s.log.Info().Str("cleared_by", actor.Username).Msg("login/logout log cleared")
	return s.repo.Clear(ctx)
}
