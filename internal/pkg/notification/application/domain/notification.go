package notification

type Type string

const (
	TypeSystem       Type = "SYSTEM"
	TypeVerification Type = "VERIFICATION"
	TypeProperty     Type = "PROPERTY"
	TypeMessage      Type = "MESSAGE"
	TypeTicket       Type = "TICKET"
)

type Notification struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      Type           `json:"type"`
	IsRead    bool           `json:"isRead"`
	Data      map[string]any `json:"data"`
	CreatedAt string         `json:"createdAt"`
}

// UnreadFrame is pushed to an admin's socket when their unread count changes.
type UnreadFrame struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func NewUnreadFrame(count int) UnreadFrame {
	return UnreadFrame{Type: "unread", Count: count}
}
