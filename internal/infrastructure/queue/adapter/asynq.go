package adapter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/queue/port"
)

// DefaultQueues are consumed when ASYNQ_QUEUES is empty.
var DefaultQueues = map[string]int{"default": 1, "broadcast": 1}

// AsynqClient implements port.Client on asynq and Redis.
type AsynqClient struct {
	client *asynq.Client
}

func NewAsynqClient(redisURL string) (*AsynqClient, error) {
	opt, err := redisOpt(redisURL)
	if err != nil {
		return nil, err
	}
	return &AsynqClient{client: asynq.NewClient(opt)}, nil
}

var _ port.Client = (*AsynqClient)(nil)

func (a *AsynqClient) Enqueue(ctx context.Context, t port.Task, opts ...port.EnqueueOption) (string, error) {
	if t.Type == "" {
		return "", errors.New("asynq: task type is required")
	}
	info, err := a.client.EnqueueContext(ctx, asynq.NewTask(t.Type, t.Payload), toAsynq(opts)...)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

func (a *AsynqClient) Close() error {
	return a.client.Close()
}

// toAsynq maps the first option onto asynq options; callers pass one consolidated option.
func toAsynq(opts []port.EnqueueOption) []asynq.Option {
	if len(opts) == 0 {
		return nil
	}
	op := opts[0]
	var out []asynq.Option
	switch {
	case !op.ProcessAt.IsZero():
		out = append(out, asynq.ProcessAt(op.ProcessAt))
	case op.ProcessIn > 0:
		out = append(out, asynq.ProcessIn(op.ProcessIn))
	}
	if op.Queue != "" {
		out = append(out, asynq.Queue(op.Queue))
	}
	switch {
	case op.MaxRetry < 0:
		out = append(out, asynq.MaxRetry(0))
	case op.MaxRetry > 0:
		out = append(out, asynq.MaxRetry(op.MaxRetry))
	}
	if op.UniqueTTL > 0 {
		out = append(out, asynq.Unique(op.UniqueTTL))
	}
	if op.Retention > 0 {
		out = append(out, asynq.Retention(op.Retention))
	}
	return out
}

// AsynqServer implements port.Server on asynq.
type AsynqServer struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewAsynqServer builds a worker. concurrency <= 0 means 10; queues is a CSV such as
// "broadcast=2,default=1" and falls back to DefaultQueues.
func NewAsynqServer(redisURL string, concurrency int, queues string) (*AsynqServer, error) {
	opt, err := redisOpt(redisURL)
	if err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		concurrency = 10
	}
	weights := parseQueueWeights(queues)
	if len(weights) == 0 {
		weights = DefaultQueues
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      weights,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Printf("worker: task %s failed: %v", task.Type(), err)
		}),
	})
	return &AsynqServer{server: srv, mux: asynq.NewServeMux()}, nil
}

var _ port.Server = (*AsynqServer)(nil)

func (s *AsynqServer) Register(taskType string, h port.Handler) {
	s.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, port.Task{Type: t.Type(), Payload: t.Payload()})
	})
}

// Run starts processing and shuts down once ctx is cancelled.
func (s *AsynqServer) Run(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	s.server.Shutdown()
	return nil
}

func (s *AsynqServer) Stop(context.Context) error {
	s.server.Shutdown()
	return nil
}

func redisOpt(redisURL string) (asynq.RedisConnOpt, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, errors.New("asynq: REDIS_URL is not set")
	}
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("asynq: parse REDIS_URL: %w", err)
	}
	return opt, nil
}

// parseQueueWeights parses "broadcast=2,default=1" into a map; a missing weight means 1.
func parseQueueWeights(s string) map[string]int {
	res := make(map[string]int)
	for _, part := range strings.Split(s, ",") {
		name, weight, _ := strings.Cut(strings.TrimSpace(part), "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		w := 1
		if i, err := strconv.Atoi(strings.TrimSpace(weight)); err == nil && i > 0 {
			w = i
		}
		res[name] = w
	}
	return res
}
