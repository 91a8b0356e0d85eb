package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	ticket "github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/domain"
)

const ScreenName = "tickets"

func NewTicketScreen(fetcher paging.Fetcher[ticket.Ticket]) *screen.Screen[ticket.Ticket] {
	final := func(t ticket.Ticket) bool { return t.Status.Final() }
	return &screen.Screen[ticket.Ticket]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"status", "priority", "category"},
		Table: table.Table[ticket.Ticket]{
			Searchable: true,
			Columns: []table.Column[ticket.Ticket]{
				{Key: "subject", Label: "Subject"},
				{Key: "createdBy.email", Label: "Reporter"},
				{Key: "category", Label: "Category"},
				{Key: "priority", Label: "Priority"},
				{Key: "status", Label: "Status"},
				{Key: "createdAt", Label: "Opened", Render: func(v any, _ ticket.Ticket) string { return table.Date(v) }},
			},
			Actions: []table.Action[ticket.Ticket]{
				{Name: "review", Label: "Review", Disabled: final},
				{Name: "start", Label: "Start", Disabled: func(t ticket.Ticket) bool { return t.Status != ticket.StatusOpen }},
				{Name: "reopen", Label: "Reopen", Disabled: func(t ticket.Ticket) bool { return !final(t) }},
			},
		},
	}
}
