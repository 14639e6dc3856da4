package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"manolos-gestion/internal/domain/users"
)

type usersRepo struct {
	mu      sync.RWMutex
	byEmail map[string]users.User
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byEmail: make(map[string]users.User),
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(u.Email))
	if email == "" {
		return errors.New("user email required")
	}
	if _, exists := r.byEmail[email]; exists {
		return users.ErrEmailTaken
	}
	r.byEmail[email] = u
	return nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
