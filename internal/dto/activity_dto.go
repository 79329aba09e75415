package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateActivityRequest struct {
	UserId   uuid.UUID `json:"user_id" validate:"required"`
	Type     string    `json:"type" validate:"required,oneof=lesson badge course"`
	Title    string    `json:"title" validate:"required"`
	IsRecent bool      `json:"is_recent"`
}

type ActivityResponse struct {
	Id       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Time     time.Time `json:"time"`
	IsRecent bool      `json:"isRecent"`
}
