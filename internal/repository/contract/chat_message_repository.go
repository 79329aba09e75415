package contract

import (
	"context"

	"emerge-career-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// GetByUserId returns the conversation ordered by timestamp ascending.
	GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatMessage, error)
}
