package usecase

import (
	"context"
	"log"
	"time"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

type SendMessageInput struct {
	ConversationID string
	Content        string
}

// SendMessageUseCase posts an admin message into a conversation and shadows the
// conversation's preview so the list reflects it without a refetch.
type SendMessageUseCase struct {
	Repo    repository.MessagingRepository
	Shadows repository.ShadowStore
	Runner  *mutation.Runner
	now     func() time.Time
}

func NewSendMessageUseCase(repo repository.MessagingRepository, shadows repository.ShadowStore, runner *mutation.Runner) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Shadows: shadows, Runner: runner, now: time.Now}
}

// Execute returns the stored message alongside the outcome; it is zero on failure.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (mutation.Outcome, messaging.Message) {
	var sent messaging.Message
	action := mutation.Action[SendMessageInput]{
		Name:           "sendMessage",
		SuccessMessage: "Message sent",
		FallbackError:  "Failed to send message",
		Target:         func(in SendMessageInput) string { return in.ConversationID },
		Validate: func(in SendMessageInput) error {
			if _, err := messaging.NewMessage(in.ConversationID, in.Content); err != nil {
				return failure.Invalid("%s", err.Error())
			}
			return nil
		},
		Run: func(ctx context.Context, in SendMessageInput) (mutation.Result, error) {
			msg, _ := messaging.NewMessage(in.ConversationID, in.Content)
			stored, err := uc.Repo.SendMessage(ctx, msg)
			if err != nil {
				return mutation.Result{}, err
			}
			if stored.ConversationID == "" {
				stored.ConversationID = in.ConversationID
			}
			sent = stored
			uc.shadow(ctx, stored)
			return mutation.Result{Success: true}, nil
		},
	}
	return mutation.Execute(ctx, uc.Runner, action, in, nil), sent
}

func (uc *SendMessageUseCase) shadow(ctx context.Context, m messaging.Message) {
	if uc.Shadows == nil {
		return
	}
	at := m.CreatedAt
	if at == "" {
		at = uc.now().UTC().Format(time.RFC3339Nano)
	}
	sh := messaging.Shadow{
		LastMessage: messaging.LastMessage{Content: m.Content, SenderID: mutation.ActorFrom(ctx), CreatedAt: at},
		UpdatedAt:   at,
	}
	if m.Sender != nil {
		sh.LastMessage.SenderID = m.Sender.ID
	}
	if err := uc.Shadows.Put(ctx, m.ConversationID, sh); err != nil {
		log.Printf("messaging: shadow %s: %v", m.ConversationID, err)
	}
}
