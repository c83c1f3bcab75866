package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
	"github.com/serroba/link-form/internal/analytics"
	analyticsstore "github.com/serroba/link-form/internal/analytics/store"
	"github.com/serroba/link-form/internal/messaging"
	"go.uber.org/zap"
)

// ConsumerOptions hold the consumer binary settings that the server does not share.
type ConsumerOptions struct {
	DatabaseURL string
}

// PostgresPool closes the pool when the injector shuts down.
type PostgresPool struct {
	*pgxpool.Pool
}

func (p *PostgresPool) Shutdown() error {
	p.Close()

	return nil
}

// PostgresPackage provides the analytics database pool. Only invoke it when
// ConsumerOptions.DatabaseURL is set.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*PostgresPool, error) {
		opts := do.MustInvoke[*ConsumerOptions](i)

		pool, err := pgxpool.New(context.Background(), opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		return &PostgresPool{Pool: pool}, nil
	})
}

// ConsumerGroupPackage provides the consumer group that drains the Redis streams
// into the analytics store.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		opts := do.MustInvoke[*ConsumerOptions](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if opts.DatabaseURL == "" {
			logger.Warn("DATABASE_URL not set, analytics events are only logged")

			return analyticsstore.NewNoop(logger), nil
		}

		sink := analyticsstore.NewPostgres(do.MustInvoke[*PostgresPool](i).Pool)
		if err := sink.Migrate(context.Background()); err != nil {
			return nil, err
		}

		return sink, nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		client := do.MustInvoke[*RedisClient](i)

		sub, err := messaging.NewRedisSubscriber(client, messaging.NewZapLogger(logger))
		if err != nil {
			return nil, err
		}

		return NewAnalyticsConsumers(sub, do.MustInvoke[analytics.Store](i), logger), nil
	})
}
