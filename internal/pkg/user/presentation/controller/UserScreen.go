package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	user "github.com/Chizihn/glubon-admin/internal/pkg/user/application/domain"
)

// ScreenName identifies the users list on live sockets and for refetches.
const ScreenName = "users"

// NewUserScreen describes the users table.
func NewUserScreen(fetcher paging.Fetcher[user.User]) *screen.Screen[user.User] {
	return &screen.Screen[user.User]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"role", "status", "search", "isVerified"},
		Table: table.Table[user.User]{
			Searchable: true,
			Columns: []table.Column[user.User]{
				{Key: "firstName", Label: "Name", Render: func(_ any, u user.User) string { return u.FullName() }},
				{Key: "email", Label: "Email"},
				{Key: "role", Label: "Role"},
				{Key: "status", Label: "Status"},
				{Key: "isVerified", Label: "Verified", Render: func(v any, _ user.User) string { return table.YesNo(v) }},
				{Key: "createdAt", Label: "Joined", Render: func(v any, _ user.User) string { return table.Date(v) }},
			},
			Actions: []table.Action[user.User]{
				{Name: "activate", Label: "Activate User", Disabled: func(u user.User) bool { return u.Status == user.StatusActive }},
				{Name: "suspend", Label: "Suspend User", Disabled: func(u user.User) bool { return u.Status == user.StatusSuspended }},
				{Name: "ban", Label: "Ban User", Disabled: func(u user.User) bool { return u.Status == user.StatusBanned }},
			},
		},
	}
}
