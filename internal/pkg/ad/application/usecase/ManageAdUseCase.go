package usecase

import (
	"context"

	repository "github.com/Chizihn/glubon-admin/internal/pkg/ad/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
)

type SetActiveInput struct {
	AdID   string
	Active bool
}

// ManageAdUseCase pauses, resumes and deletes ads.
type ManageAdUseCase struct {
	Repo   repository.AdRepository
	Runner *mutation.Runner
}

func NewManageAdUseCase(repo repository.AdRepository, runner *mutation.Runner) *ManageAdUseCase {
	return &ManageAdUseCase{Repo: repo, Runner: runner}
}

func requireID(id string) error {
	if id == "" {
		return failure.Invalid("adId is required")
	}
	return nil
}

func (uc *ManageAdUseCase) SetActive(ctx context.Context, in SetActiveInput, refresh mutation.Refresher) mutation.Outcome {
	msg := "Ad paused"
	if in.Active {
		msg = "Ad activated"
	}
	return mutation.Execute(ctx, uc.Runner, mutation.Action[SetActiveInput]{
		Name:           "updateAdStatus",
		SuccessMessage: msg,
		FallbackError:  "Failed to update ad",
		Target:         func(in SetActiveInput) string { return in.AdID },
		Validate:       func(in SetActiveInput) error { return requireID(in.AdID) },
		Run: func(ctx context.Context, in SetActiveInput) (mutation.Result, error) {
			return uc.Repo.SetActive(ctx, in.AdID, in.Active)
		},
	}, in, refresh)
}

func (uc *ManageAdUseCase) Delete(ctx context.Context, id string, refresh mutation.Refresher) mutation.Outcome {
	return mutation.Execute(ctx, uc.Runner, mutation.Action[string]{
		Name:           "deleteAd",
		SuccessMessage: "Ad deleted successfully",
		FallbackError:  "Failed to delete ad",
		Target:         func(id string) string { return id },
		Validate:       requireID,
		Run:            uc.Repo.Delete,
	}, id, refresh)
}
