package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

type owner struct {
	Email string `json:"email"`
}

type listing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Views    int    `json:"views"`
	Featured bool   `json:"featured"`
	Owner    owner  `json:"owner"`
}

var listingTable = Table[listing]{
	Columns: []Column[listing]{
		{Key: "title", Label: "Title"},
		{Key: "owner.email", Label: "Owner"},
		{Key: "status", Label: "Status", Render: func(v any, _ listing) string { return strings.ToLower(Stringify(v)) }},
		{Key: "views", Label: "Views"},
	},
	Actions: []Action[listing]{
		{Name: "approve", Label: "Approve", Disabled: func(l listing) bool { return l.Status == "ACTIVE" }},
	},
	Searchable: true,
}

func page(items []listing, current, total, count int) paging.Result[listing] {
	return paging.Result[listing]{
		Page:  paging.Page[listing]{Items: items, CurrentPage: current, TotalPages: total, TotalCount: count},
		Limit: 20,
	}
}

func fixtures() []listing {
	return []listing{
		{ID: "p1", Title: "Lekki Duplex", Status: "ACTIVE", Views: 12, Owner: owner{Email: "ada@glubon.com"}},
		{ID: "p2", Title: "Yaba Studio", Status: "PENDING_REVIEW", Views: 3, Owner: owner{Email: "tunde@glubon.com"}},
		{ID: "p3", Title: "Ikeja Flat", Status: "REJECTED", Views: 0, Owner: owner{Email: "ngozi@mail.com"}},
	}
}

func TestRenderRowsAndFooter(t *testing.T) {
	v := listingTable.Render(page(fixtures(), 1, 3, 45), "")

	require.Len(t, v.Rows, 3)
	assert.Equal(t, []Cell{{Text: "Lekki Duplex"}, {Text: "ada@glubon.com"}, {Text: "active"}, {Text: "12"}}, v.Rows[0].Cells)
	assert.Equal(t, "p1", v.Rows[0].ID)
	assert.True(t, v.Rows[0].Actions[0].Disabled)
	assert.False(t, v.Rows[1].Actions[0].Disabled)
	assert.Equal(t, "Page 1 of 3", v.Footer.Label)
	assert.False(t, v.Footer.PreviousEnabled)
	assert.True(t, v.Footer.NextEnabled)
}

func TestSearchFiltersCurrentPageOnly(t *testing.T) {
	v := listingTable.Render(page(fixtures(), 2, 3, 45), "GLUBON.COM")

	assert.Len(t, v.Rows, 2)
	assert.Equal(t, 2, v.Matching)
	assert.Equal(t, 45, v.Footer.TotalCount)
	assert.Equal(t, "Page 2 of 3", v.Footer.Label)
}

func TestSearchMatchesAnyField(t *testing.T) {
	rows := Search(fixtures(), "pending")
	require.Len(t, rows, 1)
	assert.Equal(t, "p2", rows[0].ID)

	assert.Len(t, Search(fixtures(), "   "), 3)
	assert.Empty(t, Search(fixtures(), "abuja"))
}

func TestSearchIgnoredWhenNotSearchable(t *testing.T) {
	tbl := listingTable
	tbl.Searchable = false

	v := tbl.Render(page(fixtures(), 1, 1, 3), "yaba")
	assert.Len(t, v.Rows, 3)
}

func TestLoadingRendersSkeleton(t *testing.T) {
	res := page(nil, 1, 0, 0)
	res.Loading = true

	v := listingTable.Render(res, "")

	require.Len(t, v.Rows, 20)
	for _, r := range v.Rows {
		assert.True(t, r.Skeleton)
		assert.Len(t, r.Cells, 4)
	}
	assert.False(t, v.Footer.NextEnabled)
}

func TestEmptyState(t *testing.T) {
	v := listingTable.Render(page(nil, 1, 0, 0), "")

	assert.True(t, v.Empty)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, []Cell{{Text: EmptyMessage, Span: 4}}, v.Rows[0].Cells)
	assert.Equal(t, "Page 1 of 1", v.Footer.Label)
}

func TestErrorState(t *testing.T) {
	res := page(nil, 1, 0, 0)
	res.Error = failure.New(failure.KindNetwork, "connection refused")

	v := listingTable.Render(res, "")

	assert.Equal(t, "connection refused", v.Error)
	assert.True(t, v.Retry)
	assert.Empty(t, v.Rows)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "2.5", Stringify(2.5))
	assert.Equal(t, "a, b", Stringify([]any{"a", "b"}))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(nil))
	assert.Equal(t, "Mar 4, 2026", Date("2026-03-04T10:00:00Z"))
	assert.Equal(t, "soon", Date("soon"))
	assert.Equal(t, "12.50", Money(12.5))
	assert.Equal(t, "", Money(nil))
}
