package dto

import "github.com/google/uuid"

// SurveyRequest creates a profile when user_id is absent and updates the
// existing one when it is present.
type SurveyRequest struct {
	UserId        *uuid.UUID `json:"user_id"`
	Username      string     `json:"username"`
	Password      string     `json:"password"`
	Name          *string    `json:"name"`
	Email         string     `json:"email"`
	Avatar        string     `json:"avatar"`
	Subjects      []string   `json:"subjects"`
	Interests     string     `json:"interests"`
	Skills        string     `json:"skills"`
	Goal          string     `json:"goal"`
	ThinkingStyle string     `json:"thinking_style" validate:"omitempty,oneof=Plan Explore Create Analyze"`
	ExtraInfo     string     `json:"extra_info"`
}

type SurveyResponse struct {
	UserId uuid.UUID `json:"userId"`
}

type UserResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          *string   `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar"`
	Subjects      []string  `json:"subjects"`
	Interests     string    `json:"interests"`
	Skills        string    `json:"skills"`
	Goal          string    `json:"goal"`
	ThinkingStyle string    `json:"thinking_style"`
	ExtraInfo     string    `json:"extra_info"`
	Level         int       `json:"level"`
	Progress      int       `json:"progress"`
	StreakDays    int       `json:"streak_days"`
	HasProfile    bool      `json:"hasProfile"`
}
