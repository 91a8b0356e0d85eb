package table

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

// EmptyMessage is shown in the single spanning row of an empty table.
const EmptyMessage = "No data available"

// Column describes one table column. Key may be dotted ("owner.email") to reach nested fields.
// When Render is nil the raw value is stringified.
type Column[T any] struct {
	Key    string
	Label  string
	Render func(value any, row T) string
}

// Action describes a row-level control. Disabled guards actions that would be no-ops,
// such as approving a listing that is already active.
type Action[T any] struct {
	Name     string
	Label    string
	Disabled func(row T) bool
}

// Table is a pure projection of a page of rows onto column descriptors.
type Table[T any] struct {
	Columns    []Column[T]
	Actions    []Action[T]
	Searchable bool
	PageSize   int
	// RowID extracts the identifier used by row actions; defaults to the "id" field.
	RowID func(row T) string
}

// Cell is one rendered table cell.
type Cell struct {
	Text string `json:"text"`
	Span int    `json:"span,omitempty"`
}

// RowAction is an action descriptor rendered for one row.
type RowAction struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// Row is one rendered table row.
type Row struct {
	ID       string      `json:"id,omitempty"`
	Cells    []Cell      `json:"cells"`
	Actions  []RowAction `json:"actions,omitempty"`
	Skeleton bool        `json:"skeleton,omitempty"`
}

// Footer is the pagination footer.
type Footer struct {
	Label           string `json:"label"`
	CurrentPage     int    `json:"currentPage"`
	TotalPages      int    `json:"totalPages"`
	TotalCount      int    `json:"totalCount"`
	PreviousEnabled bool   `json:"previousEnabled"`
	NextEnabled     bool   `json:"nextEnabled"`
}

// Header is a rendered column header.
type Header struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// View is the rendered table as sent to the browser.
type View struct {
	Headers  []Header `json:"headers"`
	Rows     []Row    `json:"rows"`
	Loading  bool     `json:"loading"`
	Empty    bool     `json:"empty"`
	Search   string   `json:"search,omitempty"`
	Error    string   `json:"error,omitempty"`
	Retry    bool     `json:"retry,omitempty"`
	Footer   Footer   `json:"footer"`
	Matching int      `json:"matching"`
}

// Render projects result onto the table. If the table is searchable and search is
// non-empty, only the current page's rows are filtered; totals are left untouched.
func (t Table[T]) Render(res paging.Result[T], search string) View {
	v := View{
		Headers: t.headers(),
		Loading: res.Loading,
		Footer: Footer{
			Label:           fmt.Sprintf("Page %d of %d", res.CurrentPage, max(res.TotalPages, 1)),
			CurrentPage:     res.CurrentPage,
			TotalPages:      res.TotalPages,
			TotalCount:      res.TotalCount,
			PreviousEnabled: res.CanPrevious(),
			NextEnabled:     res.CanNext(),
		},
	}

	switch {
	case res.Loading:
		v.Rows = t.skeleton(res.Limit)
		return v
	case res.Error != nil:
		v.Error = res.Error.Message
		if v.Error == "" {
			v.Error = res.Error.Error()
		}
		v.Retry = true
		v.Rows = []Row{}
		return v
	}

	items := res.Items
	if t.Searchable && strings.TrimSpace(search) != "" {
		v.Search = search
		items = Search(items, search)
	}
	v.Matching = len(items)

	if len(items) == 0 {
		v.Empty = true
		v.Rows = []Row{{Cells: []Cell{{Text: EmptyMessage, Span: max(len(t.Columns), 1)}}}}
		return v
	}

	v.Rows = make([]Row, 0, len(items))
	for _, item := range items {
		v.Rows = append(v.Rows, t.row(item))
	}
	return v
}

func (t Table[T]) headers() []Header {
	out := make([]Header, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, Header{Key: c.Key, Label: c.Label})
	}
	return out
}

func (t Table[T]) skeleton(limit int) []Row {
	n := t.PageSize
	if n <= 0 {
		n = limit
	}
	if n <= 0 {
		n = paging.DefaultLimit
	}
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Cells: make([]Cell, len(t.Columns)), Skeleton: true}
	}
	return rows
}

func (t Table[T]) row(item T) Row {
	fields := flatten(item)
	r := Row{Cells: make([]Cell, 0, len(t.Columns))}
	if t.RowID != nil {
		r.ID = t.RowID(item)
	} else if id, ok := fields["id"]; ok {
		r.ID = Stringify(id)
	}
	for _, c := range t.Columns {
		raw := lookup(fields, c.Key)
		text := ""
		if c.Render != nil {
			text = c.Render(raw, item)
		} else {
			text = Stringify(raw)
		}
		r.Cells = append(r.Cells, Cell{Text: text})
	}
	for _, a := range t.Actions {
		disabled := a.Disabled != nil && a.Disabled(item)
		r.Actions = append(r.Actions, RowAction{Name: a.Name, Label: a.Label, Disabled: disabled})
	}
	return r
}

// Search keeps the rows where any field's string form contains term, case-insensitively.
func Search[T any](items []T, term string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, s := range values(flatten(item)) {
			if strings.Contains(strings.ToLower(s), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Stringify renders a raw field value the way an unrendered column shows it.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339)
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, Stringify(e))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return strings.Join(values(x), " ")
	default:
		return fmt.Sprint(x)
	}
}

// flatten turns a row into its JSON field map so columns and search work on any struct.
func flatten(item any) map[string]any {
	if m, ok := item.(map[string]any); ok {
		return m
	}
	b, err := json.Marshal(item)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{"value": string(b)}
	}
	return m
}

func lookup(fields map[string]any, key string) any {
	var cur any = fields
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

// values collects the leaf string forms of a field map in a stable order.
func values(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		switch x := m[k].(type) {
		case map[string]any:
			out = append(out, values(x)...)
		case nil:
		default:
			out = append(out, Stringify(x))
		}
	}
	return out
}
