package csvstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

func TestUserRepository_SeedsAdminOnHeal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")

	repo, err := NewUserRepository(path)
	if err != nil {
		t.Fatalf("NewUserRepository returned error: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("seeded admin not found: %v", err)
	}
	if admin.Password != "admin123" || admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected seeded admin: %+v", admin)
	}

	// Reopening must not reseed or duplicate.
	repo2, err := NewUserRepository(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	users, _ := repo2.List(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected 1 user after reopen, got %d", len(users))
	}
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	repo, err := NewUserRepository(path)
	if err != nil {
		t.Fatal(err)
	}

	bob := &domain.User{Username: "bob", Password: "pw", Role: domain.RoleEmployee}
	if err := repo.Create(context.Background(), bob); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Create(context.Background(), bob); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_DeletePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	repo, err := NewUserRepository(path)
	if err != nil {
		t.Fatal(err)
	}

	_ = repo.Create(context.Background(), &domain.User{Username: "bob", Password: "pw", Role: domain.RoleEmployee})
	if err := repo.Delete(context.Background(), "bob"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(context.Background(), "bob"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	reopened, err := NewUserRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reopened.FindByUsername(context.Background(), "bob"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("deleted user survived reopen: %v", err)
	}
}
