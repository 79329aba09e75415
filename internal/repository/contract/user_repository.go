package contract

import (
	"context"

	"emerge-career-be/internal/entity"

	"github.com/google/uuid"
)

// Repositories return (nil, nil) when a record does not exist; a non-nil
// error always means a storage failure, never a miss.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// IncrementProgress adds increment to the user's progress, capped at 100.
	// Crossing 100 bumps the level and wraps progress to (old+increment) mod 100.
	IncrementProgress(ctx context.Context, id uuid.UUID, increment int) (*entity.User, error)
}
