package service

import (
	"context"
	"fmt"

	"emerge-career-be/internal/dto"
	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/advisor"

	"github.com/google/uuid"
)

type IChatService interface {
	GetHistory(ctx context.Context, userId uuid.UUID) ([]dto.ChatMessageResponse, error)
	CreateMessage(ctx context.Context, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error)
	CareerCoach(ctx context.Context, req *dto.CareerCoachRequest) (*dto.CareerCoachResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	advisor    *advisor.Advisor
	logger     logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, adv *advisor.Advisor, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		advisor:    adv,
		logger:     log,
	}
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID) ([]dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, toChatMessageResponse(m))
	}
	return responses, nil
}

func (s *chatService) CreateMessage(ctx context.Context, req *dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message := &entity.ChatMessage{
		UserId:  req.UserId,
		Message: req.Message,
		Sender:  req.Sender,
	}
	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	res := toChatMessageResponse(message)
	return &res, nil
}

// CareerCoach persists the user's question, asks the model with the profile
// injected, and persists the reply. The user message is stored before the
// upstream call so the question survives even if the reply write fails.
func (s *chatService) CareerCoach(ctx context.Context, req *dto.CareerCoachRequest) (*dto.CareerCoachResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	userMessage := &entity.ChatMessage{
		UserId:  user.Id,
		Message: req.Message,
		Sender:  entity.ChatSenderUser,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	name := user.Username
	if user.Name != nil && *user.Name != "" {
		name = *user.Name
	}
	reply := s.advisor.ChatReply(ctx, req.Message, advisor.Profile{
		Name:          name,
		Subjects:      user.Subjects,
		Interests:     user.Interests,
		Skills:        user.Skills,
		Goal:          user.Goal,
		ThinkingStyle: user.ThinkingStyle,
	})

	botMessage := &entity.ChatMessage{
		UserId:  user.Id,
		Message: reply,
		Sender:  entity.ChatSenderBot,
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		return nil, err
	}

	return &dto.CareerCoachResponse{Response: reply}, nil
}

func toChatMessageResponse(message *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        message.Id,
		Message:   message.Message,
		Sender:    message.Sender,
		Timestamp: message.Timestamp,
	}
}
