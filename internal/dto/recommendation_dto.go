package dto

import "github.com/google/uuid"

type RecommendationResponse struct {
	Id          uuid.UUID              `json:"id"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Url         string                 `json:"url"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type VideoResponse struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Url          string `json:"url"`
	ThumbnailUrl string `json:"thumbnailUrl,omitempty"`
	ChannelTitle string `json:"channelTitle,omitempty"`
}

type CourseResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
}
