package service

import (
	"context"
	"encoding/json"

	"emerge-career-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

// Publish wraps a domain event in the standard envelope and puts it on the
// in-process bus.
func (ps *publisherService) Publish(ctx context.Context, event events.Event) error {
	envelope := map[string]interface{}{
		"type":        event.EventType(),
		"payload":     event.Payload(),
		"occurred_at": event.Timestamp(),
	}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), raw)
	msg.SetContext(ctx)
	return ps.pubSub.Publish(ps.topicName, msg)
}
