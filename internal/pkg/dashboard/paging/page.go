package paging

import (
	"context"
	"math"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
)

// DefaultLimit is the page size used when a caller does not ask for one.
const DefaultLimit = 20

// Sort orders a list query by one field.
type Sort struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// Params is the full input of one list query.
type Params struct {
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Filters filter.Filters `json:"filters,omitempty"`
	Sort    *Sort          `json:"sort,omitempty"`
}

// Normalized clamps page to >= 1 and limit to > 0.
func (p Params) Normalized() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Filters == nil {
		p.Filters = filter.Filters{}
	}
	return p
}

// MaxOffset bounds Offset so a huge page number cannot overflow.
const MaxOffset = math.MaxInt32

// Offset is the number of items before the page, at most MaxOffset.
func (p Params) Offset() int {
	p = p.Normalized()
	if p.Page-1 > MaxOffset/p.Limit {
		return MaxOffset
	}
	return (p.Page - 1) * p.Limit
}

// Page is the uniform result shape of every list query.
type Page[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	CurrentPage     int  `json:"currentPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Fetcher is the capability a backend must offer for a paginated screen.
type Fetcher[T any] interface {
	FetchPage(ctx context.Context, params Params) (Page[T], error)
}

// FetchFunc adapts a plain function to Fetcher.
type FetchFunc[T any] func(ctx context.Context, params Params) (Page[T], error)

func (f FetchFunc[T]) FetchPage(ctx context.Context, params Params) (Page[T], error) {
	return f(ctx, params)
}

// Normalize fills the derived fields of a page the backend may have left out.
// totalPages is ceil(totalCount/limit); the navigation flags follow from currentPage.
func Normalize[T any](p Page[T], params Params) Page[T] {
	params = params.Normalized()
	if p.Items == nil {
		p.Items = []T{}
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = params.Page
	}
	if p.TotalPages <= 0 && p.TotalCount > 0 {
		p.TotalPages = (p.TotalCount + params.Limit - 1) / params.Limit
	}
	p.HasPreviousPage = p.CurrentPage > 1
	p.HasNextPage = p.CurrentPage < p.TotalPages
	return p
}

// ItemsEnvelope is the `{items, totalCount, totalPages, ...}` response shape.
type ItemsEnvelope[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	CurrentPage     int  `json:"currentPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func (e ItemsEnvelope[T]) Page(params Params) Page[T] {
	return Normalize(Page[T]{
		Items:       e.Items,
		TotalCount:  e.TotalCount,
		TotalPages:  e.TotalPages,
		CurrentPage: e.CurrentPage,
	}, params)
}

// Pagination is the metadata half of a `{data, pagination}` envelope.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// DataEnvelope is the `{data, pagination}` response shape.
type DataEnvelope[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func (e DataEnvelope[T]) Page(params Params) Page[T] {
	if e.Pagination.Limit > 0 {
		params.Limit = e.Pagination.Limit
	}
	return Normalize(Page[T]{
		Items:       e.Data,
		TotalCount:  e.Pagination.Total,
		TotalPages:  e.Pagination.TotalPages,
		CurrentPage: e.Pagination.Page,
	}, params)
}

// Slice paginates an already complete list, for resources the backend returns unpaginated.
func Slice[T any](all []T, params Params) Page[T] {
	params = params.Normalized()
	total := len(all)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return Normalize(Page[T]{Items: items, TotalCount: total, CurrentPage: params.Page}, params)
}
