package implementation

import (
	"context"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/mapper"
	"emerge-career-be/internal/model"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecommendationMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecommendationMapper(),
	}
}

func (r *RecommendationRepositoryImpl) Create(ctx context.Context, recommendation *entity.Recommendation) error {
	m := r.mapper.ToModel(recommendation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recommendation = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecommendationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Recommendation{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RecommendationRepositoryImpl) GetByUserId(ctx context.Context, userId uuid.UUID, recType entity.RecommendationType) ([]*entity.Recommendation, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userId)
	if recType != "" {
		query = query.Where("type = ?", string(recType))
	}

	var models []*model.Recommendation
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	recommendations := make([]*entity.Recommendation, len(models))
	for i, m := range models {
		recommendations[i] = r.mapper.ToEntity(m)
	}
	return recommendations, nil
}
