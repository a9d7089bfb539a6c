package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

func appendEvent(t *testing.T, repo *AuditRepository, username, action, ts string) {
	t.Helper()
	parsed, err := time.ParseInLocation(auditTimeLayout, ts, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Append(context.Background(), &domain.AuditEvent{
		Username: username, Action: action, Timestamp: parsed,
	}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
}

func TestAuditRepository_FilterChronological(t *testing.T) {
	repo, err := NewAuditRepository(filepath.Join(t.TempDir(), "audit.csv"))
	if err != nil {
		t.Fatal(err)
	}

	appendEvent(t, repo, "alice", domain.ActionLogin, "2026-03-01 09:00:00")
	appendEvent(t, repo, "bob", domain.ActionLogin, "2026-03-02 09:00:00")
	appendEvent(t, repo, "alice", domain.ActionLogout, "2026-03-03 17:30:00")

	from, _ := time.ParseInLocation(auditTimeLayout, "2026-03-02 00:00:00", time.Local)
	events, err := repo.Filter(context.Background(), ports.AuditFilter{From: from})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events from 2026-03-02 on, got %d", len(events))
	}

	events, err = repo.Filter(context.Background(), ports.AuditFilter{Username: "alice", From: from})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Action != domain.ActionLogout {
		t.Fatalf("unexpected filtered events: %+v", events)
	}
}

func TestAuditRepository_SkipsUnparseableRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	content := "Username,Action,Timestamp\n" +
		"alice,Login,not-a-timestamp\n" +
		"bob,Login,2026-03-01 08:00:00\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	repo, err := NewAuditRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	events, err := repo.Filter(context.Background(), ports.AuditFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Username != "bob" {
		t.Fatalf("expected only bob's event, got %+v", events)
	}
}

func TestAuditRepository_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	repo, err := NewAuditRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	appendEvent(t, repo, "alice", domain.ActionLogin, "2026-03-01 09:00:00")

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	events, _ := repo.Filter(context.Background(), ports.AuditFilter{})
	if len(events) != 0 {
		t.Fatalf("expected empty log, got %d events", len(events))
	}

	// Header stays intact on disk.
	if _, healed, err := Load(path, auditSchema); err != nil || healed {
		t.Fatalf("header lost after Clear (healed=%v, err=%v)", healed, err)
	}
}
