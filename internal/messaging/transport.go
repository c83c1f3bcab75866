package messaging

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// ConsumerGroupName is the redis stream consumer group analytics consumers join.
const ConsumerGroupName = "form-analytics"

// NewInProcess returns a pub/sub that delivers events inside the current process.
func NewInProcess(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
}

// NewRedisPublisher publishes events to redis streams.
func NewRedisPublisher(client redis.UniversalClient, logger watermill.LoggerAdapter) (*redisstream.Publisher, error) {
	pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client:     client,
		Marshaller: redisstream.DefaultMarshallerUnmarshaller{},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("redis stream publisher: %w", err)
	}

	return pub, nil
}

// NewRedisSubscriber consumes redis streams as part of ConsumerGroupName.
func NewRedisSubscriber(client redis.UniversalClient, logger watermill.LoggerAdapter) (*redisstream.Subscriber, error) {
	sub, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		Unmarshaller:  redisstream.DefaultMarshallerUnmarshaller{},
		ConsumerGroup: ConsumerGroupName,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("redis stream subscriber: %w", err)
	}

	return sub, nil
}
