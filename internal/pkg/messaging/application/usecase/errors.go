package usecase

import "fmt"

// ErrQueueUnavailable is returned when a broadcast is scheduled without a task queue.
var ErrQueueUnavailable = fmt.Errorf("scheduled broadcasts need REDIS_URL")
