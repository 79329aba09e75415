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

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entity.Activity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActivityRepositoryImpl) GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Activity, error) {
	var models []*model.Activity
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("time DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	activities := make([]*entity.Activity, len(models))
	for i, m := range models {
		activities[i] = r.mapper.ToEntity(m)
	}
	return activities, nil
}
