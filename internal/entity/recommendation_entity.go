package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationType string

const (
	RecommendationTypeCourse RecommendationType = "course"
	RecommendationTypeVideo  RecommendationType = "video"
)

// Recommendation is a persisted course/video suggestion shown on the dashboard.
type Recommendation struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Type        RecommendationType
	Title       string
	Description string
	Url         string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}
