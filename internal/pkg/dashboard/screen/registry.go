package screen

import (
	"context"
	"sort"
	"sync"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

// Opener is the non-generic face of a Screen.
type Opener interface {
	Open(ctx context.Context, params paging.Params, onView func(Update)) Cursor
}

// Registry looks screens up by name for the live socket.
type Registry struct {
	mu      sync.RWMutex
	screens map[string]Opener
}

func NewRegistry() *Registry {
	return &Registry{screens: make(map[string]Opener)}
}

func (r *Registry) Register(name string, s Opener) {
	r.mu.Lock()
	r.screens[name] = s
	r.mu.Unlock()
}

func (r *Registry) Get(name string) (Opener, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.screens[name]
	if !ok {
		return nil, failure.New(failure.KindNotFound, "unknown screen "+name)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.screens))
	for n := range r.screens {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Refreshers finds the list an admin currently has open for a screen, so mutations
// issued over HTTP can reload it. For returns nil when nothing is open.
type Refreshers interface {
	For(adminID, screen string) mutation.Refresher
}

// NoRefresh is used when no live socket layer is wired.
type NoRefresh struct{}

func (NoRefresh) For(string, string) mutation.Refresher { return nil }

// Refresher resolves the refresher for the admin, tolerating a nil set.
func Refresher(set Refreshers, adminID, screen string) mutation.Refresher {
	if set == nil {
		return nil
	}
	return set.For(adminID, screen)
}
