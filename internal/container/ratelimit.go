package container

import (
	"time"

	"github.com/samber/do"
	"github.com/serroba/link-form/internal/ratelimit"
	"github.com/serroba/link-form/internal/store"
)

// RateLimitPackage provides the session creation limiter.
func RateLimitPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (ratelimit.Store, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.InProcess() {
			return store.NewRateLimitMemoryStore(), nil
		}

		return store.NewRateLimitRedisStore(do.MustInvoke[*RedisClient](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (ratelimit.Limiter, error) {
		opts := do.MustInvoke[*Options](i)

		return ratelimit.NewSlidingWindowLimiter(
			do.MustInvoke[ratelimit.Store](i),
			int64(opts.CreateLimit),
			time.Minute,
		), nil
	})
}
