package verification

import "strings"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type DocumentType string

const (
	DocumentNationalID     DocumentType = "NATIONAL_ID"
	DocumentPassport       DocumentType = "PASSPORT"
	DocumentDriversLicense DocumentType = "DRIVERS_LICENSE"
	DocumentVotersCard     DocumentType = "VOTERS_CARD"
)

// Label is the human name of a document type.
func (d DocumentType) Label() string {
	switch d {
	case DocumentNationalID:
		return "National ID"
	case DocumentPassport:
		return "Passport"
	case DocumentDriversLicense:
		return "Driver's License"
	case DocumentVotersCard:
		return "Voter's Card"
	}
	return string(d)
}

type Applicant struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Verification is one identity document submission.
type Verification struct {
	ID              string       `json:"id"`
	User            *Applicant   `json:"user"`
	DocumentType    DocumentType `json:"documentType"`
	DocumentNumber  string       `json:"documentNumber"`
	DocumentImages  []string     `json:"documentImages"`
	Status          Status       `json:"status"`
	RejectionReason *string      `json:"rejectionReason"`
	ReviewedBy      *string      `json:"reviewedBy"`
	CreatedAt       string       `json:"createdAt"`
}

func (v Verification) ApplicantName() string {
	if v.User == nil {
		return ""
	}
	return strings.TrimSpace(v.User.FirstName + " " + v.User.LastName)
}

// Reviewable reports whether a decision can still be made.
func (v Verification) Reviewable() bool { return v.Status == StatusPending }
