package user

import "time"

// Status is the account state an admin can moderate.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusBanned    Status = "BANNED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusBanned:
		return true
	}
	return false
}

// Role is the platform role of an account.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleLister Role = "LISTER"
	RoleRenter Role = "RENTER"
	RoleOwner  Role = "PROPERTY_OWNER"
	RoleTenant Role = "TENANT"
)

// User is an account as the admin API lists it.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber *string    `json:"phoneNumber,omitempty"`
	Role        Role       `json:"role"`
	Status      Status     `json:"status"`
	IsVerified  bool       `json:"isVerified"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// FullName joins the name parts, falling back to the email.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Email
}

// Stats are the activity counters of the user detail view.
type Stats struct {
	Properties    int `json:"properties"`
	Conversations int `json:"conversations"`
	Likes         int `json:"likes"`
	Views         int `json:"views"`
}

// Detail is the single-user view.
type Detail struct {
	User
	Stats *Stats `json:"stats,omitempty"`
}
