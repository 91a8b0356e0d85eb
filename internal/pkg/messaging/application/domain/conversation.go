package messaging

import (
	"strings"
	"time"
)

// LastMessage is the preview shown in the conversations list.
type LastMessage struct {
	Content   string `json:"content"`
	SenderID  string `json:"senderId"`
	CreatedAt string `json:"createdAt"`
}

type PropertyRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Conversation struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants"`
	Property     *PropertyRef  `json:"property"`
	LastMessage  *LastMessage  `json:"lastMessage"`
	UnreadCount  int           `json:"unreadCount"`
	UpdatedAt    string        `json:"updatedAt"`
}

// Between lists the participant names.
func (c Conversation) Between() string {
	names := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		names = append(names, p.Name())
	}
	return strings.Join(names, ", ")
}

// Shadow is the locally written preview of a message just sent, before any refetch.
type Shadow struct {
	LastMessage LastMessage `json:"lastMessage"`
	UpdatedAt   string      `json:"updatedAt"`
}

// Overlay applies s when it is newer than what the backend returned.
func (c Conversation) Overlay(s Shadow) Conversation {
	if !later(s.UpdatedAt, c.UpdatedAt) {
		return c
	}
	lm := s.LastMessage
	c.LastMessage = &lm
	c.UpdatedAt = s.UpdatedAt
	return c
}

func later(a, b string) bool {
	ta, err := time.Parse(time.RFC3339Nano, a)
	if err != nil {
		return false
	}
	tb, err := time.Parse(time.RFC3339Nano, b)
	if err != nil {
		return true
	}
	return ta.After(tb)
}
