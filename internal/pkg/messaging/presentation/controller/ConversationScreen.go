package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
)

const ScreenName = "conversations"

func NewConversationScreen(fetcher paging.Fetcher[messaging.Conversation]) *screen.Screen[messaging.Conversation] {
	return &screen.Screen[messaging.Conversation]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"search", "propertyId"},
		Table: table.Table[messaging.Conversation]{
			Searchable: true,
			Columns: []table.Column[messaging.Conversation]{
				{Key: "participants", Label: "Participants", Render: func(_ any, c messaging.Conversation) string { return c.Between() }},
				{Key: "property.title", Label: "Property"},
				{Key: "lastMessage.content", Label: "Last Message"},
				{Key: "unreadCount", Label: "Unread"},
				{Key: "updatedAt", Label: "Updated", Render: func(v any, _ messaging.Conversation) string { return table.Date(v) }},
			},
			Actions: []table.Action[messaging.Conversation]{
				{Name: "open", Label: "Open"},
			},
		},
	}
}
