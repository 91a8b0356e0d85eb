package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "GRAPHQL_URL", "GRAPHQL_WS_URL", "PAGE_SIZE", "FILTER_DEBOUNCE", "ALLOWED_ORIGINS", "SESSION_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, 8085, cfg.Port)
	assert.Equal(t, "https://api.glubon.com/graphql", cfg.GraphQLURL)
	assert.Equal(t, "wss://api.glubon.com/graphql", cfg.GraphQLWSURL)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.FilterDebounce)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "auth-token", cfg.CookieName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("GRAPHQL_URL", "http://localhost:4000/graphql")
	t.Setenv("GRAPHQL_WS_URL", "")
	t.Setenv("PAGE_SIZE", "50")
	t.Setenv("FILTER_DEBOUNCE", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.glubon.com, http://localhost:3000 ,")

	cfg := Load()

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "ws://localhost:4000/graphql", cfg.GraphQLWSURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.FilterDebounce)
	assert.Equal(t, []string{"https://admin.glubon.com", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "lots")
	t.Setenv("UNREAD_POLL_INTERVAL", "soon")

	cfg := Load()
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.UnreadPollInterval)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.PageSize = 0
	cfg.FilterDebounce = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAGE_SIZE")
	assert.Contains(t, err.Error(), "FILTER_DEBOUNCE")
}

func TestWorkerSettings(t *testing.T) {
	t.Setenv("ASYNQ_CONCURRENCY", "")
	t.Setenv("ASYNQ_QUEUES", "")
	cfg := Load()
	assert.Equal(t, 10, cfg.WorkerConcurrency)
	assert.Empty(t, cfg.WorkerQueues)

	t.Setenv("ASYNQ_CONCURRENCY", "4")
	t.Setenv("ASYNQ_QUEUES", "broadcast=2,default=1")
	cfg = Load()
	assert.Equal(t, 4, cfg.WorkerConcurrency)
	assert.Equal(t, "broadcast=2,default=1", cfg.WorkerQueues)
}
