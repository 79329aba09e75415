package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ChatMessageRepository struct {
	mu       sync.RWMutex
	messages []*entity.ChatMessage
}

func NewChatMessageRepository() contract.ChatMessageRepository {
	return &ChatMessageRepository{}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	clone := *message
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *ChatMessageRepository) GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var messages []*entity.ChatMessage
	for _, m := range r.messages {
		if m.UserId == userId {
			clone := *m
			messages = append(messages, &clone)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}
