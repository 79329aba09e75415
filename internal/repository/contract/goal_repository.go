package contract

import (
	"context"

	"emerge-career-be/internal/entity"

	"github.com/google/uuid"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetById(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Goal, error)
}
