package container

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/samber/do"
	"github.com/serroba/link-form/internal/analytics"
	analyticsstore "github.com/serroba/link-form/internal/analytics/store"
	"github.com/serroba/link-form/internal/messaging"
	"github.com/serroba/link-form/internal/session"
	"go.uber.org/zap"
)

// MessagingPackage provides the analytics publishers. Without Redis, events go
// through an in-process channel to a consumer group that logs them.
func MessagingPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*gochannel.GoChannel, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		return messaging.NewInProcess(messaging.NewZapLogger(logger)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.InProcess() {
			return messaging.NewPublisherGroup(do.MustInvoke[*gochannel.GoChannel](i)), nil
		}

		logger := do.MustInvoke[*zap.Logger](i)
		client := do.MustInvoke[*RedisClient](i)

		pub, err := messaging.NewRedisPublisher(client, messaging.NewZapLogger(logger))
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(pub), nil
	})

	do.Provide(injector, func(i *do.Injector) (session.Publishers, error) {
		pub := do.MustInvoke[*messaging.PublisherGroup](i).Publisher()

		return session.Publishers{
			LinksShortened:   messaging.NewPublishFunc[analytics.LinksShortenedEvent](pub, analytics.TopicLinksShortened),
			LinkOpened:       messaging.NewPublishFunc[analytics.LinkOpenedEvent](pub, analytics.TopicLinkOpened),
			PasswordRejected: messaging.NewPublishFunc[analytics.PasswordRejectedEvent](pub, analytics.TopicPasswordRejected),
		}, nil
	})

	do.ProvideNamed(injector, inProcessConsumers, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		return NewAnalyticsConsumers(
			do.MustInvoke[*gochannel.GoChannel](i),
			analyticsstore.NewNoop(logger),
			logger,
		), nil
	})
}

const inProcessConsumers = "in-process-consumers"

// InProcessConsumers returns the consumer group fed by the in-process channel.
func InProcessConsumers(injector *do.Injector) *messaging.ConsumerGroup {
	return do.MustInvokeNamed[*messaging.ConsumerGroup](injector, inProcessConsumers)
}

// NewAnalyticsConsumers subscribes one consumer per analytics topic and stores
// what they receive.
func NewAnalyticsConsumers(
	subscriber message.Subscriber,
	sink analytics.Store,
	logger *zap.Logger,
) *messaging.ConsumerGroup {
	group := messaging.NewConsumerGroup(subscriber, logger)

	group.Add(messaging.NewConsumer(subscriber, analytics.TopicLinksShortened, sink.SaveLinksShortened, logger))
	group.Add(messaging.NewConsumer(subscriber, analytics.TopicLinkOpened, sink.SaveLinkOpened, logger))
	group.Add(messaging.NewConsumer(subscriber, analytics.TopicPasswordRejected, sink.SavePasswordRejected, logger))

	return group
}
