package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
)

// RedisClient closes the shared client when the injector shuts down.
type RedisClient struct {
	redis.UniversalClient
}

func (c *RedisClient) Shutdown() error {
	return c.Close()
}

// RedisPackage provides the Redis client. Only invoke it when Options.RedisAddr is set.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*RedisClient, error) {
		opts := do.MustInvoke[*Options](i)

		return &RedisClient{UniversalClient: redis.NewClient(&redis.Options{Addr: opts.RedisAddr})}, nil
	})
}
