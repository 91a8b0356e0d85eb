package controller

import (
	"fmt"

	ad "github.com/Chizihn/glubon-admin/internal/pkg/ad/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
)

const ScreenName = "ads"

func NewAdScreen(fetcher paging.Fetcher[ad.Ad]) *screen.Screen[ad.Ad] {
	return &screen.Screen[ad.Ad]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"status", "position", "type", "isActive"},
		Table: table.Table[ad.Ad]{
			Searchable: true,
			Columns: []table.Column[ad.Ad]{
				{Key: "title", Label: "Title"},
				{Key: "position", Label: "Position"},
				{Key: "type", Label: "Type"},
				{Key: "startDate", Label: "Runs", Render: func(_ any, a ad.Ad) string { return a.StartDate + " – " + a.EndDate }},
				{Key: "budget", Label: "Budget", Render: func(v any, _ ad.Ad) string { return table.Money(v) }},
				{Key: "costPerClick", Label: "CPC", Render: func(v any, _ ad.Ad) string { return table.Money(v) }},
				{Key: "clicks", Label: "Clicks / Views", Render: func(_ any, a ad.Ad) string { return fmt.Sprintf("%d / %d", a.Clicks, a.Impressions) }},
				{Key: "isActive", Label: "Active", Render: func(v any, _ ad.Ad) string { return table.YesNo(v) }},
			},
			Actions: []table.Action[ad.Ad]{
				{Name: "activate", Label: "Activate", Disabled: func(a ad.Ad) bool { return a.IsActive }},
				{Name: "pause", Label: "Pause", Disabled: func(a ad.Ad) bool { return !a.IsActive }},
				{Name: "delete", Label: "Delete"},
			},
		},
	}
}
