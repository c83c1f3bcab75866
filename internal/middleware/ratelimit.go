package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/link-form/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimiter limits operations marked with ratelimit.MetadataKey per client IP
// and User-Agent. Other operations pass through.
func RateLimiter(
	api huma.API,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !ratelimit.Limited(ctx.Operation()) {
			next(ctx)

			return
		}

		allowed, err := limiter.Allow(ctx.Context(), clientKey(ctx))
		if err != nil {
			logger.Error("rate limit check failed", zap.Error(err))
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

			return
		}

		if !allowed {
			logger.Warn("rate limit exceeded",
				zap.String("method", ctx.Method()),
				zap.String("path", ctx.Operation().Path),
				zap.String("client_ip", clientIP(ctx)),
			)
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "rate limit exceeded")

			return
		}

		next(ctx)
	}
}

// clientKey hashes IP and User-Agent into a limiter key.
func clientKey(ctx huma.Context) string {
	hash := sha256.Sum256([]byte(clientIP(ctx) + "|" + ctx.Header("User-Agent")))

	return hex.EncodeToString(hash[:])
}
