package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

// Publisher fans a frame out to the sockets joined to a channel.
type Publisher interface {
	Publish(channel string, frame any, excludeAdminID string) int
}

// MessageFrame is pushed to every socket joined to a conversation.
type MessageFrame struct {
	Type           string            `json:"type"`
	ConversationID string            `json:"conversation_id"`
	Message        messaging.Message `json:"message"`
}

// StreamErrorFrame tells joined sockets the live feed stopped.
type StreamErrorFrame struct {
	Type           string `json:"type"`
	Code           string `json:"code"`
	ConversationID string `json:"conversation_id"`
	Error          string `json:"error"`
}

// Channel is the realtime channel of a conversation.
func Channel(conversationID string) string { return "conversation:" + conversationID }

type watch struct {
	refs   int
	cancel context.CancelFunc

	// dead is set when the subscription ended on its own; refs still count joined sessions.
	dead bool
}

// MessageRelay keeps one backend subscription per watched conversation and relays each
// message to its realtime channel. A subscription that ends on its own keeps its references
// and is restarted by the next Watch.
type MessageRelay struct {
	Stream  repository.MessageStream
	Pub     Publisher
	Shadows repository.ShadowStore

	mu      sync.Mutex
	watches map[string]*watch
	wg      sync.WaitGroup
}

func NewMessageRelay(stream repository.MessageStream, pub Publisher, shadows repository.ShadowStore) *MessageRelay {
	return &MessageRelay{Stream: stream, Pub: pub, Shadows: shadows, watches: make(map[string]*watch)}
}

// Watch adds a reference to conversationID, subscribing with token on the first one
// or when the previous subscription has ended.
func (r *MessageRelay) Watch(conversationID, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.watches[conversationID]
	if ok {
		w.refs++
		if !w.dead {
			return
		}
	} else {
		w = &watch{refs: 1}
		r.watches[conversationID] = w
	}
	r.start(conversationID, token, w)
}

// start runs a subscription for w; r.mu must be held.
func (r *MessageRelay) start(conversationID, token string, w *watch) {
	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(graphql.WithToken(context.Background(), token))
	w.cancel = cancel
	w.dead = false
	r.wg.Add(1)
	go r.run(ctx, conversationID, w)
}

// Unwatch drops a reference; the subscription ends with the last one.
func (r *MessageRelay) Unwatch(conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.watches[conversationID]
	if !ok {
		return
	}
	w.refs--
	if w.refs <= 0 {
		w.cancel()
		delete(r.watches, conversationID)
	}
}

// Watching reports how many conversations have at least one reference.
func (r *MessageRelay) Watching() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.watches)
}

// Close ends every subscription and waits for them to return.
func (r *MessageRelay) Close() {
	r.mu.Lock()
	for id, w := range r.watches {
		w.cancel()
		delete(r.watches, id)
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *MessageRelay) run(ctx context.Context, conversationID string, w *watch) {
	defer r.wg.Done()
	err := r.Stream.Stream(ctx, conversationID, func(m messaging.Message) error {
		if m.ConversationID == "" {
			m.ConversationID = conversationID
		}
		r.shadow(ctx, m)
		r.Pub.Publish(Channel(conversationID), MessageFrame{Type: "message", ConversationID: conversationID, Message: m}, "")
		return nil
	})

	r.mu.Lock()
	if r.watches[conversationID] == w && ctx.Err() == nil {
		w.dead = true
	}
	r.mu.Unlock()

	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	log.Printf("messaging: relay %s stopped: %v", conversationID, err)
	r.Pub.Publish(Channel(conversationID), StreamErrorFrame{
		Type:           "error",
		Code:           "stream_closed",
		ConversationID: conversationID,
		Error:          failure.UserMessage(err, "Live updates stopped for this conversation"),
	}, "")
}

func (r *MessageRelay) shadow(ctx context.Context, m messaging.Message) {
	if r.Shadows == nil || m.CreatedAt == "" {
		return
	}
	sh := messaging.Shadow{LastMessage: messaging.LastMessage{Content: m.Content, CreatedAt: m.CreatedAt}, UpdatedAt: m.CreatedAt}
	if m.Sender != nil {
		sh.LastMessage.SenderID = m.Sender.ID
	}
	if err := r.Shadows.Put(ctx, m.ConversationID, sh); err != nil {
		log.Printf("messaging: shadow %s: %v", m.ConversationID, err)
	}
}
