package paging

import (
	"context"
	"sync"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
)

// Result is what a list screen renders: the page plus request state.
type Result[T any] struct {
	Page[T]
	Limit   int            `json:"limit"`
	Loading bool           `json:"loading"`
	Error   *failure.Error `json:"-"`
}

// CanPrevious reports whether the Previous control is enabled.
func (r Result[T]) CanPrevious() bool { return !r.Loading && r.CurrentPage > 1 }

// CanNext reports whether the Next control is enabled.
func (r Result[T]) CanNext() bool { return !r.Loading && r.CurrentPage < r.TotalPages }

// Controller binds page, page size, filters and sort to a single list query.
// Each change issues a new fetch; previous data is dropped while loading.
// When fetches overlap, only the most recently issued one is kept.
type Controller[T any] struct {
	fetcher Fetcher[T]

	mu       sync.Mutex
	params   Params
	seq      uint64
	result   Result[T]
	observer func(Result[T])
}

// NewController creates a controller starting at page 1 with the given page size.
func NewController[T any](fetcher Fetcher[T], limit int) *Controller[T] {
	params := Params{Page: 1, Limit: limit}.Normalized()
	return &Controller[T]{
		fetcher: fetcher,
		params:  params,
		result:  Result[T]{Page: Page[T]{Items: []T{}, CurrentPage: 1}, Limit: params.Limit},
	}
}

// Observe registers fn to receive every state change, including the loading state.
func (c *Controller[T]) Observe(fn func(Result[T])) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// Params returns the parameters of the current query.
func (c *Controller[T]) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.params
	p.Filters = p.Filters.Clone()
	return p
}

// Result returns the latest state.
func (c *Controller[T]) Result() Result[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Load runs the query for the current parameters.
func (c *Controller[T]) Load(ctx context.Context) Result[T] {
	return c.run(ctx, func(p *Params) {})
}

// Refetch re-executes the current query. It is the hook mutations call after success.
func (c *Controller[T]) Refetch(ctx context.Context) error {
	res := c.Load(ctx)
	if res.Error != nil {
		return res.Error
	}
	return nil
}

// Apply replaces every parameter at once and fetches a single time.
func (c *Controller[T]) Apply(ctx context.Context, params Params) Result[T] {
	return c.run(ctx, func(p *Params) {
		*p = params
		p.Filters = params.Filters.Clone()
	})
}

// SetPage moves to page; values below 1 are clamped to 1.
func (c *Controller[T]) SetPage(ctx context.Context, page int) Result[T] {
	return c.run(ctx, func(p *Params) { p.Page = page })
}

// SetLimit changes the page size and restarts at page 1.
func (c *Controller[T]) SetLimit(ctx context.Context, limit int) Result[T] {
	return c.run(ctx, func(p *Params) {
		p.Limit = limit
		p.Page = 1
	})
}

// SetFilters replaces the filters and restarts at page 1.
func (c *Controller[T]) SetFilters(ctx context.Context, f filter.Filters) Result[T] {
	return c.run(ctx, func(p *Params) {
		p.Filters = f.Clone()
		p.Page = 1
	})
}

// SetSort changes the ordering and keeps the current page.
func (c *Controller[T]) SetSort(ctx context.Context, s *Sort) Result[T] {
	return c.run(ctx, func(p *Params) { p.Sort = s })
}

func (c *Controller[T]) run(ctx context.Context, mutate func(*Params)) Result[T] {
	c.mu.Lock()
	mutate(&c.params)
	c.params = c.params.Normalized()
	c.seq++
	seq := c.seq
	params := c.params
	params.Filters = params.Filters.Clone()
	c.result = Result[T]{
		Page:    Page[T]{Items: []T{}, CurrentPage: params.Page},
		Limit:   params.Limit,
		Loading: true,
	}
	loading := c.result
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer(loading)
	}

	page, err := c.fetcher.FetchPage(ctx, params)

	res := Result[T]{Limit: params.Limit}
	if err != nil {
		res.Page = Page[T]{Items: []T{}, CurrentPage: params.Page}
		res.Error = failure.As(err)
	} else {
		res.Page = Normalize(page, params)
	}

	c.mu.Lock()
	if seq != c.seq {
		// Superseded by a newer request; report that one's state instead.
		latest := c.result
		c.mu.Unlock()
		return latest
	}
	c.result = res
	observer = c.observer
	c.mu.Unlock()

	if observer != nil {
		observer(res)
	}
	return res
}
