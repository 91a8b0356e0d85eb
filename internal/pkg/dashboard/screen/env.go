package screen

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
)

// Env is what every screen context needs from the composition root.
type Env struct {
	Runner     *mutation.Runner
	Refreshers Refreshers
	Registry   *Registry
	PageSize   int
	Debounce   time.Duration
}

// Mount registers s for live sockets and fills in the shared paging defaults.
func Mount[T any](e Env, s *Screen[T]) *Screen[T] {
	if s.Limit <= 0 {
		s.Limit = e.PageSize
	}
	if s.Debounce <= 0 {
		s.Debounce = e.Debounce
	}
	if e.Registry != nil {
		e.Registry.Register(s.Name, s)
	}
	return s
}

// RefresherFor returns the refresher of the requesting admin's open list on name.
func (e Env) RefresherFor(c *gin.Context, name string) mutation.Refresher {
	return Refresher(e.Refreshers, respond.Admin(c), name)
}
