package container

import (
	"github.com/samber/do"
	"github.com/serroba/link-form/internal/session"
	"github.com/serroba/link-form/internal/shortener"
	"github.com/serroba/link-form/internal/store"
	"go.uber.org/zap"
)

// SessionPackage provides the session repository and manager.
func SessionPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (session.Repository, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.InProcess() {
			return store.NewMemoryStore(opts.SessionTTL()), nil
		}

		client := do.MustInvoke[*RedisClient](i)

		return store.NewRedisStore(client, opts.SessionTTL()), nil
	})

	do.Provide(injector, func(i *do.Injector) (shortener.CodeGenerator, error) {
		opts := do.MustInvoke[*Options](i)

		return shortener.NewGenerator(opts.SlugGenerator, opts.SlugLength)
	})

	do.Provide(injector, func(i *do.Injector) (*session.Manager, error) {
		opts := do.MustInvoke[*Options](i)

		return session.NewManager(
			do.MustInvoke[session.Repository](i),
			do.MustInvoke[shortener.CodeGenerator](i),
			opts.BaseDomain,
			session.ClockScheduler{},
			do.MustInvoke[session.Publishers](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}
