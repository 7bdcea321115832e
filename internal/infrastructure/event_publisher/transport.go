package event_publisher

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// Transport is the messaging backend: one publisher plus a subscriber
// factory keyed by handler name.
type Transport struct {
	Publisher     message.Publisher
	NewSubscriber func(handlerName string) (message.Subscriber, error)
}

// NewGoChannelTransport keeps events on an in-process pub/sub. Every handler
// shares the same instance so a published event fans out to all of them.
func NewGoChannelTransport(wlogger watermill.LoggerAdapter) Transport {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, wlogger)

	return Transport{
		Publisher: pubSub,
		NewSubscriber: func(handlerName string) (message.Subscriber, error) {
			return pubSub, nil
		},
	}
}

// NewRedisTransport moves events onto Redis streams with one consumer group
// per handler, so each handler gets its own delivery cursor.
func NewRedisTransport(wlogger watermill.LoggerAdapter, redisClient *redis.Client) (Transport, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, wlogger)
	if err != nil {
		return Transport{}, err
	}

	return Transport{
		Publisher: publisher,
		NewSubscriber: func(handlerName string) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        redisClient,
				ConsumerGroup: "svc-playo." + handlerName,
			}, wlogger)
		},
	}, nil
}
