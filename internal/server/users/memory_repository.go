package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/foliovault/internal/common"
)

// MemoryRepository is a process-local user store. It backs tests and the
// fallback configuration; nothing survives a restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	r.users = append(r.users, *user)
	return user, nil
}

func (r *MemoryRepository) FindByIdentifier(ctx context.Context, identifier string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]User, len(r.users))
	copy(result, r.users)
	return result, nil
}
