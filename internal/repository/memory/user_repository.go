// Package memory provides map-backed repository implementations with the
// same contracts as the GORM ones. They back unit tests and credential-less
// local runs; nothing here survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserRepository() contract.UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]*entity.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Level == 0 {
		user.Level = 1
	}

	clone := *user
	r.users[user.Id] = &clone
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.Id] = &clone
	return nil
}

func (r *UserRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) IncrementProgress(ctx context.Context, id uuid.UUID, increment int) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	newProgress := u.Progress + increment
	if newProgress > 100 {
		newProgress = 100
	}
	if newProgress >= 100 {
		u.Level++
	}
	u.Progress = newProgress % 100
	u.UpdatedAt = time.Now()

	clone := *u
	return &clone, nil
}
