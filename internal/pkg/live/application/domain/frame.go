package live

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
)

// Inbound is every frame a dashboard client may send. Type selects which fields apply.
type Inbound struct {
	Type           string         `json:"type"`
	ConversationID string         `json:"conversation_id,omitempty"`
	Screen         string         `json:"screen,omitempty"`
	Page           int            `json:"page,omitempty"`
	Filters        filter.Filters `json:"filters,omitempty"`
	Key            string         `json:"key,omitempty"`
	Value          any            `json:"value,omitempty"`
	Term           string         `json:"term,omitempty"`
}

type ConnectedFrame struct {
	Type    string   `json:"type"`
	AdminID string   `json:"admin_id"`
	Screens []string `json:"screens"`
}

type AckFrame struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	Screen         string `json:"screen,omitempty"`
}

type ListFrame struct {
	Type string `json:"type"`
	screen.Update
}

func NewListFrame(u screen.Update) ListFrame { return ListFrame{Type: "list", Update: u} }

type ToastFrame struct {
	Type  string         `json:"type"`
	Toast mutation.Toast `json:"toast"`
}

type ErrorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

func NewErrorFrame(code, msg string) ErrorFrame {
	return ErrorFrame{Type: "error", Code: code, Error: msg}
}
