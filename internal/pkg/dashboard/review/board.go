package review

import (
	"sync"
	"time"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
)

// DefaultIdleTTL is how long an untouched workflow stays on a Board.
const DefaultIdleTTL = 30 * time.Minute

// Board keeps the open review workflows of every admin session, one per (session, record).
// Different records may be open at the same time; closed workflows are dropped, and so are
// workflows nobody touched for IdleTTL.
type Board struct {
	// IdleTTL <= 0 keeps workflows until they close.
	IdleTTL time.Duration

	mu        sync.Mutex
	workflows map[string]*entry
	now       func() time.Time
}

type entry struct {
	w    *Workflow
	used time.Time
}

func NewBoard() *Board {
	return &Board{IdleTTL: DefaultIdleTTL, workflows: make(map[string]*entry), now: time.Now}
}

func boardKey(session, recordID string) string { return session + "|" + recordID }

// Open starts (or restarts) the workflow for rec in session.
func (b *Board) Open(session string, rec Record, submit Submitter) (*Workflow, error) {
	b.mu.Lock()
	now := b.sweepLocked()
	e, ok := b.workflows[boardKey(session, rec.ID)]
	if !ok {
		e = &entry{w: NewWorkflow(submit)}
		b.workflows[boardKey(session, rec.ID)] = e
	}
	e.used = now
	b.mu.Unlock()

	if err := e.w.Open(rec); err != nil {
		return nil, err
	}
	return e.w, nil
}

// Get returns an open workflow.
func (b *Board) Get(session, recordID string) (*Workflow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.sweepLocked()
	e, ok := b.workflows[boardKey(session, recordID)]
	if !ok {
		return nil, failure.New(failure.KindNotFound, "review is not open")
	}
	e.used = now
	return e.w, nil
}

// Forget drops the workflow if it has reached Closed.
func (b *Board) Forget(session, recordID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := boardKey(session, recordID)
	if e, ok := b.workflows[key]; ok && e.w.Snapshot().State == Closed {
		delete(b.workflows, key)
	}
}

// Len reports how many workflows are tracked.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.workflows)
}

// sweepLocked drops idle workflows and returns the current time.
func (b *Board) sweepLocked() time.Time {
	now := b.now()
	if b.IdleTTL <= 0 {
		return now
	}
	for key, e := range b.workflows {
		if now.Sub(e.used) > b.IdleTTL {
			delete(b.workflows, key)
		}
	}
	return now
}
