package implementation

import (
	"context"
	"errors"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/mapper"
	"emerge-career-be/internal/model"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GoalMapper
}

func NewGoalRepository(db *gorm.DB) contract.GoalRepository {
	return &GoalRepositoryImpl{
		db:     db,
		mapper: mapper.NewGoalMapper(),
	}
}

func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *entity.Goal) error {
	m := r.mapper.ToModel(goal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*goal = *r.mapper.ToEntity(m)
	return nil
}

func (r *GoalRepositoryImpl) Update(ctx context.Context, goal *entity.Goal) error {
	m := r.mapper.ToModel(goal)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*goal = *r.mapper.ToEntity(m)
	return nil
}

func (r *GoalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Goal{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GoalRepositoryImpl) GetById(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var m model.Goal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GoalRepositoryImpl) GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Goal, error) {
	var models []*model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	goals := make([]*entity.Goal, len(models))
	for i, m := range models {
		goals[i] = r.mapper.ToEntity(m)
	}
	return goals, nil
}
