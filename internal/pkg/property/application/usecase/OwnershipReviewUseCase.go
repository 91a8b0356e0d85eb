package usecase

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/review"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/property/persistence/repository/port"
)

// OwnershipReviewUseCase backs the ownership-proof modal of a listing.
type OwnershipReviewUseCase struct {
	Repo   repository.PropertyRepository
	Runner *mutation.Runner
}

func NewOwnershipReviewUseCase(repo repository.PropertyRepository, runner *mutation.Runner) *OwnershipReviewUseCase {
	return &OwnershipReviewUseCase{Repo: repo, Runner: runner}
}

// Load shows the listing's ownership documents.
func (uc *OwnershipReviewUseCase) Load(ctx context.Context, id string) (review.Record, error) {
	p, err := uc.Repo.GetProperty(ctx, id)
	if err != nil {
		return review.Record{}, err
	}
	return review.Record{ID: p.ID, Title: p.Title, Documents: p.OwnershipProofs, Payload: p}, nil
}

func (uc *OwnershipReviewUseCase) Decide(ctx context.Context, d review.Decision, refresh mutation.Refresher) mutation.Outcome {
	msg := "Ownership rejected"
	if d.Approved {
		msg = "Ownership verified successfully"
	}
	action := mutation.Action[review.Decision]{
		Name:           "verifyPropertyOwnership",
		SuccessMessage: msg,
		FallbackError:  "Failed to review ownership",
		Target:         func(d review.Decision) string { return d.RecordID },
		Run: func(ctx context.Context, d review.Decision) (mutation.Result, error) {
			return uc.Repo.VerifyOwnership(ctx, d.RecordID, d.Approved, d.Reason)
		},
	}
	return mutation.Execute(ctx, uc.Runner, action, d, refresh)
}
