package mapper

import (
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/model"
)

type GoalMapper struct{}

func NewGoalMapper() *GoalMapper {
	return &GoalMapper{}
}

func (m *GoalMapper) ToEntity(g *model.Goal) *entity.Goal {
	if g == nil {
		return nil
	}
	return &entity.Goal{
		Id:        g.Id,
		UserId:    g.UserId,
		Title:     g.Title,
		Completed: g.Completed,
		Progress:  g.Progress,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (m *GoalMapper) ToModel(g *entity.Goal) *model.Goal {
	if g == nil {
		return nil
	}
	return &model.Goal{
		Id:        g.Id,
		UserId:    g.UserId,
		Title:     g.Title,
		Completed: g.Completed,
		Progress:  g.Progress,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
