package mapper

import (
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Message:   c.Message,
		Sender:    c.Sender,
		Timestamp: c.Timestamp,
	}
}

func (m *ChatMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Message:   c.Message,
		Sender:    c.Sender,
		Timestamp: c.Timestamp,
	}
}
