package property

// Status is the moderation state of a listing.
type Status string

const (
	StatusActive        Status = "ACTIVE"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusRejected      Status = "REJECTED"
	StatusSuspended     Status = "SUSPENDED"
	StatusRented        Status = "RENTED"
)

// Settable reports whether an admin may move a listing into s.
func (s Status) Settable() bool {
	switch s {
	case StatusActive, StatusRejected, StatusSuspended:
		return true
	}
	return false
}

type Owner struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Stats struct {
	Views         int `json:"views"`
	Likes         int `json:"likes"`
	Conversations int `json:"conversations"`
}

type Property struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Amount            float64  `json:"amount"`
	Status            Status   `json:"status"`
	Featured          bool     `json:"featured"`
	OwnershipVerified bool     `json:"ownershipVerified"`
	Images            []string `json:"images"`
	OwnershipProofs   []string `json:"ownershipProofs"`
	Owner             *Owner   `json:"owner"`
	Stats             *Stats   `json:"stats"`
	CreatedAt         string   `json:"createdAt"`
}

// OwnerName is shown in the owner column.
func (p Property) OwnerName() string {
	if p.Owner == nil {
		return ""
	}
	if p.Owner.FirstName == "" && p.Owner.LastName == "" {
		return p.Owner.Email
	}
	return p.Owner.FirstName + " " + p.Owner.LastName
}
