package screen

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
)

// Screen is one paginated list: a backend fetcher, the table that renders it and the
// filter keys it accepts. Concrete contexts only supply these three things.
type Screen[T any] struct {
	Name     string
	Fetcher  paging.Fetcher[T]
	Table    table.Table[T]
	Filters  []string
	Limit    int
	Debounce time.Duration
}

func (s *Screen[T]) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	if s.Table.PageSize > 0 {
		return s.Table.PageSize
	}
	return paging.DefaultLimit
}

// ListResponse is the JSON body of a list endpoint.
type ListResponse[T any] struct {
	Screen string         `json:"screen"`
	Params paging.Params  `json:"params"`
	Page   paging.Page[T] `json:"page"`
	View   table.View     `json:"view"`
}

// ListHandler serves the table for page, limit, sort, the filter keys and q (search
// over the current page only).
func (s *Screen[T]) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		params := respond.ListParams(c, s.Filters, s.limit())
		ctl := paging.NewController(s.Fetcher, params.Limit)
		res := ctl.Apply(c.Request.Context(), params)
		if res.Error != nil {
			respond.Failure(c, res.Error)
			return
		}
		c.JSON(http.StatusOK, ListResponse[T]{
			Screen: s.Name,
			Params: ctl.Params(),
			Page:   res.Page,
			View:   s.Table.Render(res, c.Query("q")),
		})
	}
}

// Open starts a live cursor on this screen. onView receives every rendered state,
// including loading skeletons and views produced by debounced filter changes.
func (s *Screen[T]) Open(ctx context.Context, params paging.Params, onView func(Update)) Cursor {
	params.Limit = s.limitOr(params.Limit)
	cur := &cursor[T]{
		name:   s.Name,
		ctx:    ctx,
		table:  s.Table,
		ctl:    paging.NewController(s.Fetcher, params.Limit),
		onView: onView,
		params: params.Normalized(),
	}
	delay := s.Debounce
	if delay <= 0 {
		delay = filter.DefaultDelay
	}
	cur.filters = filter.New(cur.params.Filters, delay, cur.promote)
	cur.ctl.Observe(cur.emit)
	return cur
}

func (s *Screen[T]) limitOr(n int) int {
	if n > 0 {
		return min(n, respond.MaxLimit)
	}
	return s.limit()
}

// Update is one rendered state pushed to a live client.
type Update struct {
	Screen     string     `json:"screen"`
	View       table.View `json:"view"`
	Debouncing bool       `json:"debouncing"`
}

// Cursor is a stateful view of one screen held by a live socket. It doubles as the
// Refresher mutations call so the admin's open list reloads after a change.
type Cursor interface {
	mutation.Refresher
	Name() string
	Load() Update
	SetPage(page int) Update
	SetFilter(key string, value any) Update
	SetSearch(term string) Update
	Current() Update
	Close()
}

type cursor[T any] struct {
	name    string
	ctx     context.Context
	table   table.Table[T]
	ctl     *paging.Controller[T]
	filters *filter.Debouncer
	onView  func(Update)
	params  paging.Params

	mu     sync.Mutex
	search string
	closed bool
}

func (c *cursor[T]) Name() string { return c.name }

func (c *cursor[T]) Load() Update {
	return c.render(c.ctl.Apply(c.ctx, c.params))
}

func (c *cursor[T]) SetPage(page int) Update {
	return c.render(c.ctl.SetPage(c.ctx, page))
}

// SetFilter edits the draft filters; the fetch happens once the debounce settles.
func (c *cursor[T]) SetFilter(key string, value any) Update {
	c.filters.Update(key, value)
	return c.Current()
}

// SetSearch narrows the current page without a fetch.
func (c *cursor[T]) SetSearch(term string) Update {
	c.mu.Lock()
	c.search = term
	c.mu.Unlock()
	return c.Current()
}

func (c *cursor[T]) Current() Update {
	return c.render(c.ctl.Result())
}

func (c *cursor[T]) Refetch(ctx context.Context) error {
	if c.isClosed() {
		return nil
	}
	return c.ctl.Refetch(ctx)
}

func (c *cursor[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.filters.Stop()
}

func (c *cursor[T]) promote(stable filter.Filters) {
	if c.isClosed() {
		return
	}
	c.ctl.SetFilters(c.ctx, stable)
}

func (c *cursor[T]) emit(res paging.Result[T]) {
	if c.isClosed() || c.onView == nil {
		return
	}
	c.onView(c.render(res))
}

func (c *cursor[T]) render(res paging.Result[T]) Update {
	c.mu.Lock()
	search := c.search
	c.mu.Unlock()
	return Update{Screen: c.name, View: c.table.Render(res, search), Debouncing: c.filters.IsDebouncing()}
}

func (c *cursor[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
