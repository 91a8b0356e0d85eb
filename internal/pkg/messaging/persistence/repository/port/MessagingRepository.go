package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
)

type MessagingRepository interface {
	FetchConversations(ctx context.Context, params paging.Params) (paging.Page[messaging.Conversation], error)
	FetchMessages(ctx context.Context, conversationID string, params paging.Params) (paging.Page[messaging.Message], error)
	SendMessage(ctx context.Context, m messaging.Message) (messaging.Message, error)
	SendBroadcast(ctx context.Context, b messaging.Broadcast) (mutation.Result, error)
}

// ShadowStore holds the conversation previews written right after a send.
type ShadowStore interface {
	Put(ctx context.Context, conversationID string, s messaging.Shadow) error
	Get(ctx context.Context, conversationID string) (messaging.Shadow, bool)
}

// MessageStream delivers messages posted to a conversation until ctx ends or the stream fails.
type MessageStream interface {
	Stream(ctx context.Context, conversationID string, fn func(messaging.Message) error) error
}
