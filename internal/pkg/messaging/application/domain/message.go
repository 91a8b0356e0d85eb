package messaging

import (
	"errors"
	"strings"
)

// MessageType mirrors the backend enum.
type MessageType string

const (
	MessageText      MessageType = "TEXT"
	MessageImage     MessageType = "IMAGE"
	MessageFile      MessageType = "FILE"
	MessageBroadcast MessageType = "BROADCAST"
)

type Participant struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (p Participant) Name() string {
	if n := strings.TrimSpace(p.FirstName + " " + p.LastName); n != "" {
		return n
	}
	return p.Email
}

// Message is one entry of a conversation thread.
type Message struct {
	ID             string       `json:"id"`
	ConversationID string       `json:"conversationId"`
	Content        string       `json:"content"`
	MessageType    MessageType  `json:"messageType"`
	Sender         *Participant `json:"sender"`
	IsRead         bool         `json:"isRead"`
	CreatedAt      string       `json:"createdAt"`
}

var ErrEmptyMessage = errors.New("message content is required")

// NewMessage trims content and rejects blank messages.
func NewMessage(conversationID, content string) (Message, error) {
	if conversationID == "" {
		return Message{}, errors.New("conversationId is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrEmptyMessage
	}
	return Message{ConversationID: conversationID, Content: content, MessageType: MessageText}, nil
}
