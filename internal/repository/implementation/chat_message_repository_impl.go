package implementation

import (
	"context"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/mapper"
	"emerge-career-be/internal/model"
	"emerge-career-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) GetByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("timestamp ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	messages := make([]*entity.ChatMessage, len(models))
	for i, m := range models {
		messages[i] = r.mapper.ToEntity(m)
	}
	return messages, nil
}
