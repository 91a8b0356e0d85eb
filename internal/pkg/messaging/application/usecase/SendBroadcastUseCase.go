package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	qport "github.com/Chizihn/glubon-admin/internal/infrastructure/queue/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/task"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

// SendBroadcastUseCase sends a broadcast now, or enqueues it when SendAt is in the future.
type SendBroadcastUseCase struct {
	Repo   repository.MessagingRepository
	Runner *mutation.Runner
	// Queue is optional; without it only immediate broadcasts are possible.
	Queue qport.Client
	now   func() time.Time
}

func NewSendBroadcastUseCase(repo repository.MessagingRepository, runner *mutation.Runner, queue qport.Client) *SendBroadcastUseCase {
	return &SendBroadcastUseCase{Repo: repo, Runner: runner, Queue: queue, now: time.Now}
}

func validateBroadcast(b messaging.Broadcast) error {
	if err := b.Validate(); err != nil {
		return failure.Invalid("%s", err.Error())
	}
	return nil
}

func (uc *SendBroadcastUseCase) Execute(ctx context.Context, b messaging.Broadcast) mutation.Outcome {
	b = b.Normalize()
	if b.Scheduled(uc.now()) {
		return uc.schedule(ctx, b)
	}
	return uc.Send(ctx, b)
}

// Send dispatches b immediately.
func (uc *SendBroadcastUseCase) Send(ctx context.Context, b messaging.Broadcast) mutation.Outcome {
	b = b.Normalize()
	b.SendAt = nil
	action := mutation.Action[messaging.Broadcast]{
		Name:           "sendBroadcastMessage",
		SuccessMessage: "Broadcast sent successfully",
		FallbackError:  "Failed to send broadcast",
		Target:         broadcastTarget,
		Validate:       validateBroadcast,
		Run:            uc.Repo.SendBroadcast,
	}
	return mutation.Execute(ctx, uc.Runner, action, b, nil)
}

func (uc *SendBroadcastUseCase) schedule(ctx context.Context, b messaging.Broadcast) mutation.Outcome {
	action := mutation.Action[messaging.Broadcast]{
		Name:           "scheduleBroadcast",
		SuccessMessage: "Broadcast scheduled for " + b.SendAt.UTC().Format("Jan 2, 2006 15:04 MST"),
		FallbackError:  "Failed to schedule broadcast",
		Target:         broadcastTarget,
		Validate: func(b messaging.Broadcast) error {
			if err := validateBroadcast(b); err != nil {
				return err
			}
			if uc.Queue == nil {
				return failure.Wrap(failure.KindValidation, "Scheduled broadcasts are not available", ErrQueueUnavailable)
			}
			return nil
		},
		Run: func(ctx context.Context, b messaging.Broadcast) (mutation.Result, error) {
			t, opt, err := task.NewSendBroadcastTask(b, mutation.ActorFrom(ctx))
			if err != nil {
				return mutation.Result{}, err
			}
			id, err := uc.Queue.Enqueue(ctx, t, opt)
			if err != nil {
				return mutation.Result{}, fmt.Errorf("enqueue broadcast: %w", err)
			}
			return mutation.Result{Success: true, Message: id}, nil
		},
	}
	return mutation.Execute(ctx, uc.Runner, action, b, nil)
}

// broadcastTarget keys the in-flight guard on content so a double submit is refused.
func broadcastTarget(b messaging.Broadcast) string {
	sum := sha256.Sum256([]byte(b.Content))
	return fmt.Sprintf("%x", sum[:6])
}
