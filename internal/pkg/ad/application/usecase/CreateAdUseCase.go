package usecase

import (
	"context"

	ad "github.com/Chizihn/glubon-admin/internal/pkg/ad/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/ad/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
)

type CreateAdUseCase struct {
	Repo   repository.AdRepository
	Runner *mutation.Runner
}

func NewCreateAdUseCase(repo repository.AdRepository, runner *mutation.Runner) *CreateAdUseCase {
	return &CreateAdUseCase{Repo: repo, Runner: runner}
}

// Execute validates in, creates the ad and returns it with the outcome.
func (uc *CreateAdUseCase) Execute(ctx context.Context, in ad.CreateInput, refresh mutation.Refresher) (mutation.Outcome, ad.Ad) {
	var created ad.Ad
	action := mutation.Action[ad.CreateInput]{
		Name:           "createAd",
		SuccessMessage: "Ad created successfully",
		FallbackError:  "Failed to create ad",
		Target:         func(in ad.CreateInput) string { return in.Title },
		Validate: func(in ad.CreateInput) error {
			if err := in.Validate(); err != nil {
				return failure.Wrap(failure.KindValidation, err.Error(), err)
			}
			return nil
		},
		Run: func(ctx context.Context, in ad.CreateInput) (mutation.Result, error) {
			a, err := uc.Repo.Create(ctx, in)
			if err != nil {
				return mutation.Result{}, err
			}
			created = a
			return mutation.Result{Success: true}, nil
		},
	}
	return mutation.Execute(ctx, uc.Runner, action, in.Normalize(), refresh), created
}
