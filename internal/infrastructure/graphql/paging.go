package graphql

import "github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"

// FilterInput flattens list params into the `filters` input object list queries take:
// page, limit, every filter key, and sortBy/sortOrder when a sort is set.
func FilterInput(p paging.Params) map[string]any {
	p = p.Normalized()
	in := make(map[string]any, len(p.Filters)+4)
	for k, v := range p.Filters {
		in[k] = v
	}
	in["page"] = p.Page
	in["limit"] = p.Limit
	if p.Sort != nil && p.Sort.Field != "" {
		in["sortBy"] = p.Sort.Field
		in["sortOrder"] = "asc"
		if p.Sort.Desc {
			in["sortOrder"] = "desc"
		}
	}
	return in
}
