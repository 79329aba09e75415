package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
)

type RecommendationRepository struct {
	mu              sync.RWMutex
	recommendations map[uuid.UUID]*entity.Recommendation
}

func NewRecommendationRepository() contract.RecommendationRepository {
	return &RecommendationRepository{
		recommendations: make(map[uuid.UUID]*entity.Recommendation),
	}
}

func (r *RecommendationRepository) Create(ctx context.Context, recommendation *entity.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if recommendation.Id == uuid.Nil {
		recommendation.Id = uuid.New()
	}
	if recommendation.CreatedAt.IsZero() {
		recommendation.CreatedAt = time.Now()
	}

	clone := *recommendation
	r.recommendations[recommendation.Id] = &clone
	return nil
}

func (r *RecommendationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recommendations[id]; !ok {
		return false, nil
	}
	delete(r.recommendations, id)
	return true, nil
}

func (r *RecommendationRepository) GetByUserId(ctx context.Context, userId uuid.UUID, recType entity.RecommendationType) ([]*entity.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recommendations []*entity.Recommendation
	for _, rec := range r.recommendations {
		if rec.UserId != userId {
			continue
		}
		if recType != "" && rec.Type != recType {
			continue
		}
		clone := *rec
		recommendations = append(recommendations, &clone)
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].CreatedAt.After(recommendations[j].CreatedAt)
	})
	return recommendations, nil
}
