package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	property "github.com/Chizihn/glubon-admin/internal/pkg/property/application/domain"
)

const ScreenName = "properties"

func NewPropertyScreen(fetcher paging.Fetcher[property.Property]) *screen.Screen[property.Property] {
	return &screen.Screen[property.Property]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"status", "featured", "ownershipVerified", "search", "city"},
		Table: table.Table[property.Property]{
			Searchable: true,
			Columns: []table.Column[property.Property]{
				{Key: "title", Label: "Title"},
				{Key: "owner.email", Label: "Owner", Render: func(_ any, p property.Property) string { return p.OwnerName() }},
				{Key: "city", Label: "City"},
				{Key: "amount", Label: "Amount", Render: func(v any, _ property.Property) string { return table.Money(v) }},
				{Key: "status", Label: "Status"},
				{Key: "featured", Label: "Featured", Render: func(v any, _ property.Property) string { return table.YesNo(v) }},
				{Key: "ownershipVerified", Label: "Ownership", Render: func(v any, _ property.Property) string {
					if b, _ := v.(bool); b {
						return "Verified"
					}
					return "Unverified"
				}},
				{Key: "stats.views", Label: "Views"},
				{Key: "createdAt", Label: "Listed", Render: func(v any, _ property.Property) string { return table.Date(v) }},
			},
			Actions: []table.Action[property.Property]{
				{Name: "approve", Label: "Approve", Disabled: func(p property.Property) bool { return p.Status == property.StatusActive }},
				{Name: "reject", Label: "Reject", Disabled: func(p property.Property) bool { return p.Status == property.StatusRejected }},
				{Name: "suspend", Label: "Suspend", Disabled: func(p property.Property) bool { return p.Status == property.StatusSuspended }},
				{Name: "feature", Label: "Feature", Disabled: func(p property.Property) bool { return p.Featured }},
				{Name: "unfeature", Label: "Unfeature", Disabled: func(p property.Property) bool { return !p.Featured }},
				{Name: "verifyOwnership", Label: "Review Ownership", Disabled: func(p property.Property) bool { return p.OwnershipVerified }},
			},
		},
	}
}
