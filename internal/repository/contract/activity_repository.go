package contract

import (
	"context"

	"emerge-career-be/internal/entity"

	"github.com/google/uuid"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	// GetByUserId returns activities newest first.
	GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Activity, error)
}
