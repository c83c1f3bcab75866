package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

// Checker defines the interface for checking service health.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts a redis client to Checker.
type RedisChecker struct {
	client redis.UniversalClient
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client redis.UniversalClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Handler reports the health of the session backend.
type Handler struct {
	backend string
	checker Checker
}

// NewHandler creates a health handler. A nil checker means the backend lives in
// process and is always healthy.
func NewHandler(backend string, checker Checker) *Handler {
	return &Handler{backend: backend, checker: checker}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status   string `json:"status"`
		Backend  string `json:"backend"`
		Sessions string `json:"sessions"`
	}
}

// Check performs a health check of the session backend.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Backend = h.backend
	resp.Body.Sessions = "healthy"

	if h.checker != nil {
		if err := h.checker.Ping(ctx); err != nil {
			resp.Body.Sessions = "unhealthy"
			resp.Body.Status = "degraded"
		}
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
