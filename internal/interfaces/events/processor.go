package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"playo/internal/entities"
)

// SubscriberConstructor builds the subscriber for one handler. The in-process
// transport hands every handler the same Go channel pub/sub; the Redis
// transport builds one subscriber per consumer group.
type SubscriberConstructor func(handlerName string) (message.Subscriber, error)

func NewEventProcessor(
	router *message.Router,
	constructor SubscriberConstructor,
	logger watermill.LoggerAdapter,
) (*cqrs.EventProcessor, error) {
	return cqrs.NewEventProcessorWithConfig(
		router,
		cqrs.EventProcessorConfig{
			GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
				handlerEvent := params.EventHandler.NewEvent()
				event, ok := handlerEvent.(entities.Event)
				if !ok {
					return "", fmt.Errorf("invalid event type: %T doesn't implement entities.Event", handlerEvent)
				}

				prefix := "events."
				if event.IsInternal() {
					prefix = "internal-events.svc-playo."
				}

				return prefix + params.EventName, nil
			},
			SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
				return constructor(params.HandlerName)
			},
			Marshaler: cqrs.JSONMarshaler{
				GenerateName: cqrs.StructName,
			},
			Logger: logger,
		},
	)
}
