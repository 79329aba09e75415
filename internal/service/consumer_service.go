package service

import (
	"context"
	"encoding/json"

	"emerge-career-be/internal/entity"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/pkg/content/youtube"
	"emerge-career-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService warms a video recommendation in the background after a
// profile submission, so the first dashboard load already has content.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	videos     *youtube.Client
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	videos *youtube.Client,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		videos:     videos,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

type eventEnvelope struct {
	Type    string `json:"type"`
	Payload struct {
		UserId  string `json:"user_id"`
		Subject string `json:"subject"`
	} `json:"payload"`
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages would retry forever
		return
	}

	if envelope.Type != events.TypeProfileSubmitted {
		msg.Ack()
		return
	}

	userId, err := uuid.Parse(envelope.Payload.UserId)
	if err != nil {
		cs.logger.Error("consumer", "invalid user id in message", map[string]interface{}{
			"user_id": envelope.Payload.UserId,
		})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().GetById(ctx, userId)
	if err != nil {
		cs.logger.Error("consumer", "failed to load user", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if user == nil {
		msg.Ack() // user deleted in the meantime
		return
	}

	// Skip when a video recommendation already exists; the survey can be
	// resubmitted and this keeps the warm-up idempotent.
	existing, err := uow.RecommendationRepository().GetByUserId(ctx, userId, entity.RecommendationTypeVideo)
	if err != nil {
		msg.Nack()
		return
	}
	if len(existing) > 0 {
		msg.Ack()
		return
	}

	subject := envelope.Payload.Subject
	if subject == "" {
		subject = user.PrimarySubject()
	}
	video := cs.videos.Search(ctx, subject)

	rec := &entity.Recommendation{
		UserId:      userId,
		Type:        entity.RecommendationTypeVideo,
		Title:       video.Title,
		Description: video.Description,
		Url:         video.Url,
		Metadata: map[string]interface{}{
			"thumbnailUrl": video.ThumbnailUrl,
			"channelTitle": video.ChannelTitle,
		},
	}
	if err := uow.RecommendationRepository().Create(ctx, rec); err != nil {
		cs.logger.Error("consumer", "failed to store video recommendation", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "video recommendation warmed", map[string]interface{}{
		"user_id": userId.String(),
		"subject": subject,
	})
	msg.Ack()
}
