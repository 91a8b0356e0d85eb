package controller

import (
	audit "github.com/Chizihn/glubon-admin/internal/pkg/audit/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
)

const ScreenName = "audit"

func NewAuditScreen(fetcher paging.Fetcher[audit.Entry]) *screen.Screen[audit.Entry] {
	return &screen.Screen[audit.Entry]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"actor", "action", "target", "success"},
		Table: table.Table[audit.Entry]{
			Searchable: true,
			Columns: []table.Column[audit.Entry]{
				{Key: "at", Label: "When", Render: func(_ any, e audit.Entry) string { return e.At.Format("Jan 2, 2006 15:04") }},
				{Key: "actor", Label: "Admin"},
				{Key: "action", Label: "Action"},
				{Key: "target", Label: "Target"},
				{Key: "success", Label: "Succeeded", Render: func(v any, _ audit.Entry) string { return table.YesNo(v) }},
				{Key: "message", Label: "Message"},
			},
		},
	}
}
