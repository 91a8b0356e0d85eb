package port

import (
	"context"
	"time"
)

// Task is a background job: a stable type name plus a JSON payload owned by the caller.
type Task struct {
	Type    string
	Payload []byte
}

// Handler processes a Task. A non-nil error is retried per the task's MaxRetry.
type Handler func(ctx context.Context, task Task) error

// EnqueueOption controls scheduling. Zero values mean unspecified.
type EnqueueOption struct {
	Queue     string
	ProcessAt time.Time // absolute schedule time, wins over ProcessIn
	ProcessIn time.Duration
	// MaxRetry < 0 disables retries; 0 keeps the backend default.
	MaxRetry  int
	UniqueTTL time.Duration
	Retention time.Duration
}

// Client enqueues tasks for the worker process.
type Client interface {
	Enqueue(ctx context.Context, t Task, opts ...EnqueueOption) (id string, err error)
	Close() error
}

// Server runs handlers. Run blocks until ctx is cancelled.
type Server interface {
	Register(taskType string, h Handler)
	Run(ctx context.Context) error
	Stop(ctx context.Context) error
}
