package usecase

import (
	"context"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	notification "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/notification/persistence/repository/port"
)

// Recipient is an admin with a live socket and the token their reads run under.
type Recipient struct {
	AdminID string
	Token   string
}

// Audience lists who should receive unread counts.
type Audience interface {
	Recipients() []Recipient
}

// Pusher delivers a frame to one admin's socket.
type Pusher interface {
	Notify(adminID string, frame any) bool
}

// UnreadPoller periodically reads each connected admin's unread count and pushes it
// when it changed since the last push.
type UnreadPoller struct {
	Repo     repository.NotificationRepository
	Audience Audience
	Pusher   Pusher
	Interval time.Duration
	Jitter   time.Duration

	mu   sync.Mutex
	last map[string]int
}

func NewUnreadPoller(repo repository.NotificationRepository, audience Audience, pusher Pusher, interval, jitter time.Duration) *UnreadPoller {
	return &UnreadPoller{Repo: repo, Audience: audience, Pusher: pusher, Interval: interval, Jitter: jitter, last: make(map[string]int)}
}

// Run polls until ctx is cancelled.
func (p *UnreadPoller) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(p.next())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			p.Tick(ctx)
		}
	}
}

func (p *UnreadPoller) next() time.Duration {
	d := p.Interval
	if d <= 0 {
		d = 30 * time.Second
	}
	if p.Jitter > 0 {
		d += rand.N(p.Jitter)
	}
	return d
}

// Tick runs one polling round.
func (p *UnreadPoller) Tick(ctx context.Context) {
	recipients := p.Audience.Recipients()
	seen := make(map[string]struct{}, len(recipients))
	for _, r := range recipients {
		seen[r.AdminID] = struct{}{}
		rctx := mutation.WithActor(graphql.WithToken(ctx, r.Token), r.AdminID)
		count, err := p.Repo.UnreadCount(rctx)
		if err != nil {
			log.Printf("notification: unread count for %s: %v", r.AdminID, err)
			continue
		}
		p.Push(r.AdminID, count)
	}

	p.mu.Lock()
	for id := range p.last {
		if _, ok := seen[id]; !ok {
			delete(p.last, id)
		}
	}
	p.mu.Unlock()
}

// Push sends count to adminID unless it is the count they already have.
func (p *UnreadPoller) Push(adminID string, count int) {
	p.mu.Lock()
	prev, known := p.last[adminID]
	p.mu.Unlock()
	if known && prev == count {
		return
	}
	if p.Pusher.Notify(adminID, notification.NewUnreadFrame(count)) {
		p.mu.Lock()
		p.last[adminID] = count
		p.mu.Unlock()
	}
}

// Forget drops what was last pushed to adminID, so the next round pushes again.
func (p *UnreadPoller) Forget(adminID string) {
	p.mu.Lock()
	delete(p.last, adminID)
	p.mu.Unlock()
}
