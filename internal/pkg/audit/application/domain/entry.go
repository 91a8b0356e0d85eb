package audit

import (
	"time"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
)

// Entry is one dispatched admin mutation.
type Entry struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Actor      string    `json:"actor" gorm:"index;type:varchar(64)"`
	Action     string    `json:"action" gorm:"index;type:varchar(64)"`
	Target     string    `json:"target" gorm:"type:varchar(128)"`
	Success    bool      `json:"success"`
	Message    string    `json:"message" gorm:"type:text"`
	DurationMs int64     `json:"durationMs"`
	At         time.Time `json:"at" gorm:"index"`
}

func (Entry) TableName() string { return "admin_audit_log" }

func FromMutation(e mutation.Entry) Entry {
	return Entry{
		ID:         e.ID,
		Actor:      e.Actor,
		Action:     e.Action,
		Target:     e.Target,
		Success:    e.Success,
		Message:    e.Message,
		DurationMs: e.Duration.Milliseconds(),
		At:         e.At,
	}
}
