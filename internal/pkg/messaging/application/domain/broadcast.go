package messaging

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Roles a broadcast may target.
var RecipientRoles = []string{"ADMIN", "LISTER", "RENTER", "PROPERTY_OWNER", "TENANT"}

var (
	ErrBroadcastContent    = errors.New("broadcast content is required")
	ErrBroadcastRecipients = errors.New("choose either recipient roles or recipient ids")
)

// Broadcast is one message fanned out to a role set or an explicit id list.
type Broadcast struct {
	Content        string     `json:"content"`
	RecipientRoles []string   `json:"recipientRoles,omitempty"`
	RecipientIDs   []string   `json:"recipientIds,omitempty"`
	SendAt         *time.Time `json:"sendAt,omitempty"`
}

// Normalize trims content, upper-cases roles and drops blank entries.
func (b Broadcast) Normalize() Broadcast {
	b.Content = strings.TrimSpace(b.Content)
	b.RecipientRoles = cleaned(b.RecipientRoles, strings.ToUpper)
	b.RecipientIDs = cleaned(b.RecipientIDs, nil)
	return b
}

// Validate requires content and exactly one recipient selector.
func (b Broadcast) Validate() error {
	if b.Content == "" {
		return ErrBroadcastContent
	}
	if (len(b.RecipientRoles) == 0) == (len(b.RecipientIDs) == 0) {
		return ErrBroadcastRecipients
	}
	for _, r := range b.RecipientRoles {
		if !validRole(r) {
			return fmt.Errorf("unknown recipient role %q", r)
		}
	}
	return nil
}

// Scheduled reports whether b must wait until SendAt.
func (b Broadcast) Scheduled(now time.Time) bool {
	return b.SendAt != nil && b.SendAt.After(now)
}

func validRole(r string) bool {
	for _, v := range RecipientRoles {
		if v == r {
			return true
		}
	}
	return false
}

func cleaned(in []string, fn func(string) string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if fn != nil {
			s = fn(s)
		}
		out = append(out, s)
	}
	return out
}
