package mapper

import (
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/model"

	"gorm.io/datatypes"
)

type RecommendationMapper struct{}

func NewRecommendationMapper() *RecommendationMapper {
	return &RecommendationMapper{}
}

func (m *RecommendationMapper) ToEntity(r *model.Recommendation) *entity.Recommendation {
	if r == nil {
		return nil
	}
	return &entity.Recommendation{
		Id:          r.Id,
		UserId:      r.UserId,
		Type:        entity.RecommendationType(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Url:         r.Url,
		Metadata:    map[string]interface{}(r.Metadata),
		CreatedAt:   r.CreatedAt,
	}
}

func (m *RecommendationMapper) ToModel(r *entity.Recommendation) *model.Recommendation {
	if r == nil {
		return nil
	}
	return &model.Recommendation{
		Id:          r.Id,
		UserId:      r.UserId,
		Type:        string(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Url:         r.Url,
		Metadata:    datatypes.JSONMap(r.Metadata),
		CreatedAt:   r.CreatedAt,
	}
}
