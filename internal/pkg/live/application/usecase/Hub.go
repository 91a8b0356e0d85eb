package usecase

import (
	"context"
	"sync"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/realtime"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	live "github.com/Chizihn/glubon-admin/internal/pkg/live/application/domain"
	notification "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/usecase"
)

// ConversationWatcher keeps a backend message feed open while someone is joined.
type ConversationWatcher interface {
	Watch(conversationID, token string)
	Unwatch(conversationID string)
}

// Hub owns the live session of every connected admin. It is the Refreshers set mutations
// reload through, the Notifier toasts go out on and the Audience of the unread poller.
type Hub struct {
	Router   *realtime.Router
	Registry *screen.Registry
	Watcher  ConversationWatcher

	// OnConnect runs for every new socket before its connected frame.
	OnConnect func(adminID string)

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewHub(router *realtime.Router, registry *screen.Registry, watcher ConversationWatcher) *Hub {
	return &Hub{Router: router, Registry: registry, Watcher: watcher, sessions: make(map[string]*Session)}
}

var (
	_ screen.Refreshers     = (*Hub)(nil)
	_ mutation.Notifier     = (*Hub)(nil)
	_ notification.Audience = (*Hub)(nil)
)

// Connect attaches conn and starts a session for it. ctx bounds every fetch the
// session makes and should carry the admin's token and actor.
func (h *Hub) Connect(ctx context.Context, conn *realtime.Connection, token string) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		hub:     h,
		conn:    conn,
		ctx:     ctx,
		cancel:  cancel,
		token:   token,
		cursors: make(map[string]screen.Cursor),
		joined:  make(map[string]struct{}),
	}
	h.Router.Attach(conn)

	h.mu.Lock()
	h.sessions[conn.AdminID] = s
	h.mu.Unlock()

	if h.OnConnect != nil {
		h.OnConnect(conn.AdminID)
	}
	_ = conn.SendJSON(live.ConnectedFrame{Type: "connected", AdminID: conn.AdminID, Screens: h.Registry.Names()})
	return s
}

// Disconnect releases everything s holds. A newer session of the same admin is left alone.
func (h *Hub) Disconnect(s *Session) {
	h.mu.Lock()
	if h.sessions[s.AdminID()] == s {
		delete(h.sessions, s.AdminID())
	}
	h.mu.Unlock()

	s.release()
	h.Router.Detach(s.conn)
}

func (h *Hub) session(adminID string) *Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sessions[adminID]
}

// For returns the admin's open cursor on name, or nil.
func (h *Hub) For(adminID, name string) mutation.Refresher {
	s := h.session(adminID)
	if s == nil {
		return nil
	}
	cur := s.cursor(name)
	if cur == nil {
		return nil
	}
	return cur
}

// Notify sends the toast to the admin who performed the mutation.
func (h *Hub) Notify(ctx context.Context, t mutation.Toast) {
	if actor := mutation.ActorFrom(ctx); actor != "" {
		h.Router.Notify(actor, live.ToastFrame{Type: "toast", Toast: t})
	}
}

func (h *Hub) Recipients() []notification.Recipient {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]notification.Recipient, 0, len(h.sessions))
	for id, s := range h.sessions {
		out = append(out, notification.Recipient{AdminID: id, Token: s.token})
	}
	return out
}

// Close ends every session.
func (h *Hub) Close() {
	h.mu.Lock()
	all := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		all = append(all, s)
	}
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range all {
		s.release()
	}
	h.Router.Close()
}
