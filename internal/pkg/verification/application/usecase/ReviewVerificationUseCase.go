package usecase

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/review"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/verification/persistence/repository/port"
)

// ReviewVerificationUseCase loads submissions into the review modal and sends decisions.
type ReviewVerificationUseCase struct {
	Repo   repository.VerificationRepository
	Runner *mutation.Runner
}

func NewReviewVerificationUseCase(repo repository.VerificationRepository, runner *mutation.Runner) *ReviewVerificationUseCase {
	return &ReviewVerificationUseCase{Repo: repo, Runner: runner}
}

func (uc *ReviewVerificationUseCase) Load(ctx context.Context, id string) (review.Record, error) {
	v, err := uc.Repo.GetVerification(ctx, id)
	if err != nil {
		return review.Record{}, err
	}
	title := v.DocumentType.Label()
	if name := v.ApplicantName(); name != "" {
		title = name + " · " + title
	}
	return review.Record{ID: v.ID, Title: title, Documents: v.DocumentImages, Payload: v}, nil
}

var reviewAction = mutation.Action[review.Decision]{
	Name:          "reviewVerification",
	FallbackError: "Failed to review verification",
	Target:        func(d review.Decision) string { return d.RecordID },
}

func (uc *ReviewVerificationUseCase) Decide(ctx context.Context, d review.Decision, refresh mutation.Refresher) mutation.Outcome {
	a := reviewAction
	a.SuccessMessage = "Verification rejected"
	if d.Approved {
		a.SuccessMessage = "Verification approved successfully"
	}
	a.Run = func(ctx context.Context, d review.Decision) (mutation.Result, error) {
		return uc.Repo.Review(ctx, d.RecordID, d.Approved, d.Reason)
	}
	return mutation.Execute(ctx, uc.Runner, a, d, refresh)
}
