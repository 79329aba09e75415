package dto

import "emerge-career-be/pkg/content/news"

type DailyChallenge struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Xp          int    `json:"xp"`
}

type DashboardResponse struct {
	User            UserResponse             `json:"user"`
	Goals           []GoalResponse           `json:"goals"`
	Activities      []ActivityResponse       `json:"activities"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Trends          []news.Trend             `json:"trends"`
	DailyChallenge  DailyChallenge           `json:"daily_challenge"`
}
