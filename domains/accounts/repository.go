// Package accounts - User repository capability
package accounts

import (
	"sync"

	"capability-dispatch/internal/errors"
)

// Repository persists users
type Repository interface {
	// Save stores a user, replacing any user with the same email
	Save(user User) error

	// FindByEmail returns the user stored under an email address
	FindByEmail(email string) (User, error)
}

// MemoryRepository keeps users in process memory
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]User),
	}
}

// Save stores a user keyed by email
func (r *MemoryRepository) Save(user User) error {
	if user.Email == "" {
		return errors.Input("user email is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Email] = user
	return nil
}

// FindByEmail returns the user stored under an email address
func (r *MemoryRepository) FindByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return User{}, errors.NotFound("no user with email " + email)
	}
	return user, nil
}

// Len returns the number of stored users
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
