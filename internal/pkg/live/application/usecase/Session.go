package usecase

import (
	"context"
	"sync"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/realtime"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	live "github.com/Chizihn/glubon-admin/internal/pkg/live/application/domain"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
)

// Session is one admin socket: the lists it watches and the conversations it joined.
type Session struct {
	hub    *Hub
	conn   *realtime.Connection
	ctx    context.Context
	cancel context.CancelFunc
	token  string

	mu       sync.Mutex
	cursors  map[string]screen.Cursor
	joined   map[string]struct{}
	released bool
}

func (s *Session) AdminID() string { return s.conn.AdminID }

func (s *Session) Send(frame any) { _ = s.conn.SendJSON(frame) }

// Join subscribes the socket to a conversation's messages.
func (s *Session) Join(conversationID string) error {
	if conversationID == "" {
		return failure.Invalid("conversation_id is required")
	}
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return failure.New(failure.KindConflict, "session closed")
	}
	_, already := s.joined[conversationID]
	s.joined[conversationID] = struct{}{}
	s.mu.Unlock()

	if !already {
		s.hub.Router.Join(messaging.Channel(conversationID), s.conn)
		if s.hub.Watcher != nil {
			s.hub.Watcher.Watch(conversationID, s.token)
		}
	}
	s.Send(live.AckFrame{Type: "joined", ConversationID: conversationID})
	return nil
}

func (s *Session) Leave(conversationID string) error {
	if conversationID == "" {
		return failure.Invalid("conversation_id is required")
	}
	s.mu.Lock()
	_, was := s.joined[conversationID]
	delete(s.joined, conversationID)
	s.mu.Unlock()

	if was {
		s.leave(conversationID)
	}
	s.Send(live.AckFrame{Type: "left", ConversationID: conversationID})
	return nil
}

func (s *Session) leave(conversationID string) {
	s.hub.Router.Leave(messaging.Channel(conversationID), s.conn)
	if s.hub.Watcher != nil {
		s.hub.Watcher.Unwatch(conversationID)
	}
}

// Watch opens name at page with filters, replacing a cursor already open on it.
// Every rendered state, the loading one included, is pushed as a list frame.
func (s *Session) Watch(name string, page int, filters filter.Filters) error {
	opener, err := s.hub.Registry.Get(name)
	if err != nil {
		return err
	}
	cur := opener.Open(s.ctx, paging.Params{Page: page, Filters: filters}, func(u screen.Update) {
		s.Send(live.NewListFrame(u))
	})

	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		cur.Close()
		return failure.New(failure.KindConflict, "session closed")
	}
	prev := s.cursors[name]
	s.cursors[name] = cur
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	cur.Load()
	return nil
}

// Filter edits one draft filter; the list reloads once typing settles.
func (s *Session) Filter(name, key string, value any) error {
	cur, err := s.open(name)
	if err != nil {
		return err
	}
	s.Send(live.NewListFrame(cur.SetFilter(key, value)))
	return nil
}

// Search narrows the current page without a fetch.
func (s *Session) Search(name, term string) error {
	cur, err := s.open(name)
	if err != nil {
		return err
	}
	s.Send(live.NewListFrame(cur.SetSearch(term)))
	return nil
}

func (s *Session) Page(name string, page int) error {
	cur, err := s.open(name)
	if err != nil {
		return err
	}
	cur.SetPage(page)
	return nil
}

func (s *Session) Refresh(name string) error {
	cur, err := s.open(name)
	if err != nil {
		return err
	}
	// a failed fetch is already rendered as the list's error state
	_ = cur.Refetch(s.ctx)
	return nil
}

func (s *Session) Unwatch(name string) error {
	s.mu.Lock()
	cur := s.cursors[name]
	delete(s.cursors, name)
	s.mu.Unlock()
	if cur == nil {
		return failure.Invalid("screen %s is not open", name)
	}
	cur.Close()
	s.Send(live.AckFrame{Type: "unwatched", Screen: name})
	return nil
}

func (s *Session) cursor(name string) screen.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursors[name]
}

func (s *Session) open(name string) (screen.Cursor, error) {
	if cur := s.cursor(name); cur != nil {
		return cur, nil
	}
	return nil, failure.Invalid("screen %s is not open", name)
}

func (s *Session) release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	cursors := s.cursors
	joined := s.joined
	s.cursors = make(map[string]screen.Cursor)
	s.joined = make(map[string]struct{})
	s.mu.Unlock()

	s.cancel()
	for _, cur := range cursors {
		cur.Close()
	}
	for id := range joined {
		s.leave(id)
	}
}
