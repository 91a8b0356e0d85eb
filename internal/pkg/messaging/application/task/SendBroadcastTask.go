package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	qport "github.com/Chizihn/glubon-admin/internal/infrastructure/queue/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
)

// SendBroadcastTaskType is the queue task name for a scheduled broadcast.
const SendBroadcastTaskType = "broadcast:send"

// Queue is the asynq queue broadcasts are enqueued on.
const Queue = "broadcast"

// SendBroadcastTaskPayload is the JSON payload transported via the queue.
type SendBroadcastTaskPayload struct {
	Content        string    `json:"content"`
	RecipientRoles []string  `json:"recipientRoles,omitempty"`
	RecipientIDs   []string  `json:"recipientIds,omitempty"`
	ScheduledBy    string    `json:"scheduledBy"`
	SendAt         time.Time `json:"sendAt"`
}

// NewSendBroadcastTask builds the task for b and the options that run it once at b.SendAt.
func NewSendBroadcastTask(b messaging.Broadcast, scheduledBy string) (qport.Task, qport.EnqueueOption, error) {
	if b.SendAt == nil {
		return qport.Task{}, qport.EnqueueOption{}, fmt.Errorf("broadcast has no send time")
	}
	payload, err := json.Marshal(SendBroadcastTaskPayload{
		Content:        b.Content,
		RecipientRoles: b.RecipientRoles,
		RecipientIDs:   b.RecipientIDs,
		ScheduledBy:    scheduledBy,
		SendAt:         b.SendAt.UTC(),
	})
	if err != nil {
		return qport.Task{}, qport.EnqueueOption{}, err
	}
	// a failed broadcast is reported, never resent
	opt := qport.EnqueueOption{Queue: Queue, ProcessAt: *b.SendAt, MaxRetry: -1, Retention: 24 * time.Hour}
	return qport.Task{Type: SendBroadcastTaskType, Payload: payload}, opt, nil
}

// Sender performs the broadcast; the worker passes the immediate send path of the use case.
type Sender func(ctx context.Context, b messaging.Broadcast) mutation.Outcome

// RegisterSendBroadcastTask binds the task handler to the provided server.
func RegisterSendBroadcastTask(srv qport.Server, send Sender) {
	srv.Register(SendBroadcastTaskType, func(ctx context.Context, t qport.Task) error {
		var p SendBroadcastTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			return fmt.Errorf("broadcast: malformed payload: %w", err)
		}

		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		ctx = mutation.WithActor(ctx, p.ScheduledBy)

		out := send(ctx, messaging.Broadcast{
			Content:        p.Content,
			RecipientRoles: p.RecipientRoles,
			RecipientIDs:   p.RecipientIDs,
		})
		if !out.OK() {
			return fmt.Errorf("broadcast scheduled by %s: %w", p.ScheduledBy, out.Err)
		}
		return nil
	})
}
