package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/samber/do"
	"github.com/serroba/link-form/internal/handlers"
	"github.com/serroba/link-form/internal/health"
	"github.com/serroba/link-form/internal/middleware"
	"github.com/serroba/link-form/internal/ratelimit"
	"github.com/serroba/link-form/internal/session"
	"github.com/serroba/link-form/internal/web"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the API with every route registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)

		api := humachi.New(router, huma.DefaultConfig("Link Form", "1.0.0"))
		api.UseMiddleware(
			middleware.RequestMeta(api),
			middleware.RateLimiter(api, do.MustInvoke[ratelimit.Limiter](i), logger),
		)

		handlers.RegisterRoutes(api, handlers.NewSessionHandler(do.MustInvoke[*session.Manager](i), logger))
		health.RegisterRoutes(api, healthHandler(i, opts))
		web.RegisterRoutes(router, logger)

		return api, nil
	})
}

func healthHandler(i *do.Injector, opts *Options) *health.Handler {
	if opts.InProcess() {
		return health.NewHandler("memory", nil)
	}

	return health.NewHandler("redis", health.NewRedisChecker(do.MustInvoke[*RedisClient](i)))
}
