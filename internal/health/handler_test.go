package health_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/link-form/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) Ping(_ context.Context) error {
	return m.err
}

func TestHandler_Check(t *testing.T) {
	t.Run("in-process backend is always healthy", func(t *testing.T) {
		handler := health.NewHandler("memory", nil)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "memory", resp.Body.Backend)
		assert.Equal(t, "healthy", resp.Body.Sessions)
	})

	t.Run("returns ok when redis is healthy", func(t *testing.T) {
		handler := health.NewHandler("redis", &mockChecker{})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Sessions)
	})

	t.Run("returns degraded when redis is unhealthy", func(t *testing.T) {
		handler := health.NewHandler("redis", &mockChecker{err: errors.New("connection refused")})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Sessions)
	})
}

func TestRegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	health.RegisterRoutes(api, health.NewHandler("memory", nil))

	resp := api.Get("/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"backend":"memory"`)
}

func TestRedisChecker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	assert.NoError(t, health.NewRedisChecker(client).Ping(context.Background()))
}
