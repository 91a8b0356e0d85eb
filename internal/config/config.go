package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
)

type Config struct {
	Port         int
	GraphQLURL   string
	GraphQLWSURL string
	ServiceToken string
	GraphQLDebug bool

	RedisURL string
	DBURL    string

	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration

	QueryCacheTTL      time.Duration
	FilterDebounce     time.Duration
	PageSize           int
	UnreadPollInterval time.Duration
	UnreadPollJitter   time.Duration

	AllowedOrigins []string

	WorkerConcurrency int

	// WorkerQueues is a CSV of queue=weight pairs; empty uses the adapter's defaults.
	WorkerQueues string
}

func Load() Config {
	gqlURL := str("GRAPHQL_URL", graphql.DefaultEndpoint)
	wsURL := os.Getenv("GRAPHQL_WS_URL")
	if wsURL == "" {
		wsURL = graphql.WSURL(gqlURL)
	}

	return Config{
		Port:         integer("APP_PORT", 8085),
		GraphQLURL:   gqlURL,
		GraphQLWSURL: wsURL,
		ServiceToken: os.Getenv("GRAPHQL_SERVICE_TOKEN"),
		GraphQLDebug: os.Getenv("GRAPHQL_DEBUG") == "true",

		RedisURL: os.Getenv("REDIS_URL"),
		DBURL:    os.Getenv("DB_URL"),

		CookieName:   str("AUTH_COOKIE_NAME", "auth-token"),
		CookieSecure: os.Getenv("AUTH_COOKIE_SECURE") == "true",
		SessionTTL:   duration("SESSION_TTL", 24*time.Hour),

		QueryCacheTTL:      duration("QUERY_CACHE_TTL", 30*time.Second),
		FilterDebounce:     duration("FILTER_DEBOUNCE", 500*time.Millisecond),
		PageSize:           integer("PAGE_SIZE", 20),
		UnreadPollInterval: duration("UNREAD_POLL_INTERVAL", 30*time.Second),
		UnreadPollJitter:   duration("UNREAD_POLL_JITTER", 5*time.Second),

		AllowedOrigins: list("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		WorkerConcurrency: integer("ASYNQ_CONCURRENCY", 10),
		WorkerQueues:      os.Getenv("ASYNQ_QUEUES"),
	}
}

// Validate rejects settings the dashboard cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("APP_PORT must be positive"))
	}
	if c.PageSize <= 0 {
		errs = append(errs, errors.New("PAGE_SIZE must be positive"))
	}
	if c.FilterDebounce <= 0 {
		errs = append(errs, errors.New("FILTER_DEBOUNCE must be positive"))
	}
	if c.UnreadPollInterval <= 0 {
		errs = append(errs, errors.New("UNREAD_POLL_INTERVAL must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.GraphQLURL == "" {
		errs = append(errs, errors.New("GRAPHQL_URL is required"))
	}
	return errors.Join(errs...)
}

func str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func integer(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func list(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
