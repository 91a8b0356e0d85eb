package session

import (
	"strings"
	"time"
)

// Role is the platform role of an account.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Admin is the signed-in dashboard user as the API reports it.
type Admin struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Role        Role    `json:"role"`
	ProfilePic  *string `json:"profilePic,omitempty"`
}

// IsAdmin reports whether the account may use the dashboard.
func (a Admin) IsAdmin() bool {
	r := Role(strings.ToUpper(string(a.Role)))
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Session is what the store persists per token.
type Session struct {
	Token     string    `json:"token"`
	User      Admin     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// ProfileInput is the editable subset of the admin profile.
type ProfileInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}
