package graphql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	mbgraphql "github.com/machinebox/graphql"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
)

// DefaultEndpoint is the platform API the dashboard talks to.
const DefaultEndpoint = "https://api.glubon.com/graphql"

// Client executes operations against the GraphQL endpoint. Queries are read through an
// optional cache that mutations invalidate by group; nothing else writes into it except
// the explicit Patch used for chat shadows.
type Client struct {
	endpoint     string
	gql          *mbgraphql.Client
	cache        port.Cache
	ttl          time.Duration
	serviceToken string
	httpClient   *http.Client
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithCache enables the read cache with entries living for ttl.
func WithCache(c port.Cache, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.cache = c
		cl.ttl = ttl
	}
}

// WithServiceToken sets the token used when ctx carries none (background workers).
func WithServiceToken(token string) Option {
	return func(cl *Client) { cl.serviceToken = token }
}

// WithHTTPClient replaces the transport, mostly for tests and timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(cl *Client) { cl.httpClient = hc }
}

// WithDebug logs every request line the underlying client emits.
func WithDebug(on bool) Option {
	return func(cl *Client) { cl.debug = on }
}

// NewClient builds a client for endpoint; an empty endpoint means DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{endpoint: endpoint, httpClient: &http.Client{Timeout: 15 * time.Second}}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.gql = mbgraphql.NewClient(endpoint, mbgraphql.WithHTTPClient(c.httpClient))
	if c.debug {
		c.gql.Log = func(s string) { log.Printf("graphql: %s", s) }
	}
	return c
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Query runs a query operation, serving it from the read cache when possible.
func (c *Client) Query(ctx context.Context, op Operation, vars Vars, out any) error {
	if op.Kind != KindQuery {
		return fmt.Errorf("graphql: %s is not a query", op.Name)
	}
	if c.cache == nil || op.Group == "" {
		return c.run(ctx, op, vars, out)
	}

	key, err := c.queryKey(ctx, op, vars)
	if err != nil {
		log.Printf("graphql: cache key for %s: %v", op.Name, err)
		return c.run(ctx, op, vars, out)
	}
	if raw, err := c.cache.Get(ctx, key); err == nil {
		if jerr := json.Unmarshal([]byte(raw), out); jerr == nil {
			return nil
		}
	} else if !errors.Is(err, port.ErrMiss) {
		log.Printf("graphql: cache get %s: %v", op.Name, err)
	}

	if err := c.run(ctx, op, vars, out); err != nil {
		return err
	}
	if b, err := json.Marshal(out); err == nil {
		if err := c.cache.Set(ctx, key, string(b), c.ttl); err != nil {
			log.Printf("graphql: cache set %s: %v", op.Name, err)
		}
	}
	return nil
}

// Mutate runs a mutation and, once the server confirms, invalidates the operation's group.
func (c *Client) Mutate(ctx context.Context, op Operation, vars Vars, out any) error {
	if op.Kind != KindMutation {
		return fmt.Errorf("graphql: %s is not a mutation", op.Name)
	}
	if err := c.run(ctx, op, vars, out); err != nil {
		return err
	}
	if op.Group != "" {
		if err := c.Invalidate(ctx, op.Group); err != nil {
			log.Printf("graphql: invalidate %s after %s: %v", op.Group, op.Name, err)
		}
	}
	return nil
}

// Invalidate makes every cached query of group miss from now on.
func (c *Client) Invalidate(ctx context.Context, group string) error {
	if c.cache == nil {
		return nil
	}
	gen := strconv.FormatInt(time.Now().UnixNano(), 36)
	return c.cache.Set(ctx, generationKey(group), gen, 0)
}

// Patch writes value straight into the cache under key. It is the one deliberate
// exception to invalidate-only caching: immediate shadows that a later refetch supersedes.
func (c *Client) Patch(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c.cache == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, "gql:patch:"+key, string(b), ttl)
}

// Shadow reads a value written by Patch. It reports false on a miss or without a cache.
func (c *Client) Shadow(ctx context.Context, key string, out any) bool {
	if c.cache == nil {
		return false
	}
	raw, err := c.cache.Get(ctx, "gql:patch:"+key)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (c *Client) run(ctx context.Context, op Operation, vars Vars, out any) error {
	req := mbgraphql.NewRequest(op.Document)
	for k, v := range vars.compact() {
		req.Var(k, v)
	}
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if err := c.gql.Run(ctx, req, out); err != nil {
		classified := Classify(err)
		if failure.KindOf(classified) == failure.KindNetwork {
			log.Printf("graphql: %s: %v", op.Name, err)
		}
		return classified
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if tok := TokenFrom(ctx); tok != "" {
		return tok
	}
	return c.serviceToken
}

func (c *Client) queryKey(ctx context.Context, op Operation, vars Vars) (string, error) {
	gen, err := c.cache.Get(ctx, generationKey(op.Group))
	if errors.Is(err, port.ErrMiss) {
		gen = "0"
	} else if err != nil {
		return "", err
	}
	b, err := json.Marshal(vars.compact())
	if err != nil {
		return "", err
	}
	// per caller: notification and profile reads differ between admins
	sum := sha256.Sum256(append([]byte(op.Name+"\x00"+c.token(ctx)+"\x00"), b...))
	return "gql:q:" + op.Group + ":" + gen + ":" + hex.EncodeToString(sum[:16]), nil
}

func generationKey(group string) string { return "gql:gen:" + group }
