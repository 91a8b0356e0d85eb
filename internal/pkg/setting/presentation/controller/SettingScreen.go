package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	setting "github.com/Chizihn/glubon-admin/internal/pkg/setting/application/domain"
)

const ScreenName = "settings"

func NewSettingScreen(fetcher paging.Fetcher[setting.Setting]) *screen.Screen[setting.Setting] {
	return &screen.Screen[setting.Setting]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"category"},
		Table: table.Table[setting.Setting]{
			Searchable: true,
			Columns: []table.Column[setting.Setting]{
				{Key: "key", Label: "Key"},
				{Key: "value", Label: "Value"},
				{Key: "category", Label: "Category"},
				{Key: "description", Label: "Description"},
				{Key: "updatedAt", Label: "Updated", Render: func(v any, _ setting.Setting) string { return table.Date(v) }},
			},
			Actions: []table.Action[setting.Setting]{{Name: "edit", Label: "Edit"}},
		},
	}
}
