package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatMessageRequest struct {
	UserId  uuid.UUID `json:"user_id" validate:"required"`
	Message string    `json:"message" validate:"required"`
	Sender  string    `json:"sender" validate:"required,oneof=user bot"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// CareerCoachRequest is a user question for the coach. The profile injected
// into the prompt is loaded server-side from user_id.
type CareerCoachRequest struct {
	UserId  uuid.UUID `json:"user_id" validate:"required"`
	Message string    `json:"message" validate:"required"`
}

type CareerCoachResponse struct {
	Response string `json:"response"`
}
