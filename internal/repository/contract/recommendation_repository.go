package contract

import (
	"context"

	"emerge-career-be/internal/entity"

	"github.com/google/uuid"
)

type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *entity.Recommendation) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// GetByUserId returns recommendations newest first. An empty recType
	// returns every type.
	GetByUserId(ctx context.Context, userId uuid.UUID, recType entity.RecommendationType) ([]*entity.Recommendation, error)
}
