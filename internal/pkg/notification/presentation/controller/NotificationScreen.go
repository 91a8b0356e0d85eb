package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	notification "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/domain"
)

const ScreenName = "notifications"

func NewNotificationScreen(fetcher paging.Fetcher[notification.Notification]) *screen.Screen[notification.Notification] {
	return &screen.Screen[notification.Notification]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"isRead", "type"},
		Table: table.Table[notification.Notification]{
			Columns: []table.Column[notification.Notification]{
				{Key: "title", Label: "Title"},
				{Key: "message", Label: "Message"},
				{Key: "type", Label: "Type"},
				{Key: "isRead", Label: "Read", Render: func(v any, _ notification.Notification) string { return table.YesNo(v) }},
				{Key: "createdAt", Label: "Received", Render: func(v any, _ notification.Notification) string { return table.Date(v) }},
			},
			Actions: []table.Action[notification.Notification]{
				{Name: "markRead", Label: "Mark as read", Disabled: func(n notification.Notification) bool { return n.IsRead }},
			},
		},
	}
}
