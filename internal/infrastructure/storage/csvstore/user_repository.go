package csvstore

import (
	"context"
	"sync"

	"github.com/jobgenix/crm-system/internal/core/domain"
)

var userSchema = []string{"Username", "Password", "Role"}

// Default account seeded into a freshly created identity table.
const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123"
)

// UserRepository persists the identity table. The full table lives in memory
// and is rewritten to disk on every mutation; the mutex serialises each
// read-modify-write cycle within this process only.
type UserRepository struct {
	mu    sync.Mutex
	path  string
	table *Table
}

// NewUserRepository loads (or heals) the users file. A healed table is
// seeded with the default admin account so the system never starts locked out.
func NewUserRepository(path string) (*UserRepository, error) {
	table, healed, err := Load(path, userSchema)
	if err != nil {
		return nil, err
	}
	r := &UserRepository{path: path, table: table}
	if healed {
		r.table.Rows = append(r.table.Rows, []string{defaultAdminUser, defaultAdminPassword, domain.RoleAdmin})
		if err := Save(r.path, r.table); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.table.Rows {
		if row[0] == username {
			return &domain.User{Username: row[0], Password: row[1], Role: row[2]}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.table.Rows {
		if row[0] == user.Username {
			return domain.ErrUserExists
		}
	}
	r.table.Rows = append(r.table.Rows, []string{user.Username, user.Password, user.Role})
	return Save(r.path, r.table)
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.table.Rows {
		if row[0] == username {
			r.table.Rows = append(r.table.Rows[:i], r.table.Rows[i+1:]...)
			return Save(r.path, r.table)
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*domain.User, 0, len(r.table.Rows))
	for _, row := range r.table.Rows {
		users = append(users, &domain.User{Username: row[0], Password: row[1], Role: row[2]})
	}
	return users, nil
}

// Close flushes the current table state to disk.
func (r *UserRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Save(r.path, r.table)
}
