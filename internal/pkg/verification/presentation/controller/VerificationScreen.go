package controller

import (
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	verification "github.com/Chizihn/glubon-admin/internal/pkg/verification/application/domain"
)

const ScreenName = "verifications"

func NewVerificationScreen(fetcher paging.Fetcher[verification.Verification]) *screen.Screen[verification.Verification] {
	notReviewable := func(v verification.Verification) bool { return !v.Reviewable() }
	return &screen.Screen[verification.Verification]{
		Name:    ScreenName,
		Fetcher: fetcher,
		Filters: []string{"status", "documentType"},
		Table: table.Table[verification.Verification]{
			Searchable: true,
			Columns: []table.Column[verification.Verification]{
				{Key: "user.email", Label: "Applicant", Render: func(v any, r verification.Verification) string {
					if n := r.ApplicantName(); n != "" {
						return n
					}
					return table.Stringify(v)
				}},
				{Key: "documentType", Label: "Document", Render: func(_ any, r verification.Verification) string { return r.DocumentType.Label() }},
				{Key: "status", Label: "Status"},
				{Key: "createdAt", Label: "Submitted", Render: func(v any, _ verification.Verification) string { return table.Date(v) }},
			},
			Actions: []table.Action[verification.Verification]{
				{Name: "review", Label: "Review"},
				{Name: "approve", Label: "Approve", Disabled: notReviewable},
				{Name: "reject", Label: "Reject", Disabled: notReviewable},
			},
		},
	}
}
