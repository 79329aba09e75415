package mapper

import (
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	return &entity.Activity{
		Id:       a.Id,
		UserId:   a.UserId,
		Type:     entity.ActivityType(a.Type),
		Title:    a.Title,
		Time:     a.Time,
		IsRecent: a.IsRecent,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}
	return &model.Activity{
		Id:       a.Id,
		UserId:   a.UserId,
		Type:     string(a.Type),
		Title:    a.Title,
		Time:     a.Time,
		IsRecent: a.IsRecent,
	}
}
