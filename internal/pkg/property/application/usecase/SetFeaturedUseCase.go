package usecase

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/property/persistence/repository/port"
)

type SetFeaturedInput struct {
	PropertyID string
	Featured   bool
}

type SetFeaturedUseCase struct {
	Repo   repository.PropertyRepository
	Runner *mutation.Runner
}

func NewSetFeaturedUseCase(repo repository.PropertyRepository, runner *mutation.Runner) *SetFeaturedUseCase {
	return &SetFeaturedUseCase{Repo: repo, Runner: runner}
}

func (uc *SetFeaturedUseCase) Execute(ctx context.Context, in SetFeaturedInput, refresh mutation.Refresher) mutation.Outcome {
	msg := "Property removed from featured"
	if in.Featured {
		msg = "Property featured successfully"
	}
	action := mutation.Action[SetFeaturedInput]{
		Name:           "togglePropertyFeatured",
		SuccessMessage: msg,
		FallbackError:  "Failed to update featured status",
		Target:         func(in SetFeaturedInput) string { return in.PropertyID },
		Validate: func(in SetFeaturedInput) error {
			if in.PropertyID == "" {
				return failure.Invalid("propertyId is required")
			}
			return nil
		},
		Run: func(ctx context.Context, in SetFeaturedInput) (mutation.Result, error) {
			return uc.Repo.SetFeatured(ctx, in.PropertyID, in.Featured)
		},
	}
	return mutation.Execute(ctx, uc.Runner, action, in, refresh)
}
