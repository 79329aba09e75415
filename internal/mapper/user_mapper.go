package mapper

import (
	"encoding/json"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	subjects := []string{}
	if len(u.Subjects) > 0 {
		// A corrupt column degrades to an empty subject list rather than failing the read.
		_ = json.Unmarshal(u.Subjects, &subjects)
	}
	return &entity.User{
		Id:            u.Id,
		Username:      u.Username,
		Password:      u.Password,
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Subjects:      subjects,
		Interests:     u.Interests,
		Skills:        u.Skills,
		Goal:          u.Goal,
		ThinkingStyle: u.ThinkingStyle,
		ExtraInfo:     u.ExtraInfo,
		Level:         u.Level,
		Progress:      u.Progress,
		StreakDays:    u.StreakDays,
		LastLoginDate: u.LastLoginDate,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	subjects := u.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	raw, _ := json.Marshal(subjects)
	return &model.User{
		Id:            u.Id,
		Username:      u.Username,
		Password:      u.Password,
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Subjects:      raw,
		Interests:     u.Interests,
		Skills:        u.Skills,
		Goal:          u.Goal,
		ThinkingStyle: u.ThinkingStyle,
		ExtraInfo:     u.ExtraInfo,
		Level:         u.Level,
		Progress:      u.Progress,
		StreakDays:    u.StreakDays,
		LastLoginDate: u.LastLoginDate,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
