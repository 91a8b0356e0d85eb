package usecase

import (
	"context"
	"strings"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	user "github.com/Chizihn/glubon-admin/internal/pkg/user/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/user/persistence/repository/port"
)

// UpdateUserStatusInput targets one account.
type UpdateUserStatusInput struct {
	UserID string
	Status user.Status
}

// UpdateUserStatusUseCase activates, suspends or bans an account.
type UpdateUserStatusUseCase struct {
	Repo   repository.UserRepository
	Runner *mutation.Runner
}

func NewUpdateUserStatusUseCase(repo repository.UserRepository, runner *mutation.Runner) *UpdateUserStatusUseCase {
	return &UpdateUserStatusUseCase{Repo: repo, Runner: runner}
}

var statusMessages = map[user.Status]string{
	user.StatusActive:    "User activated successfully",
	user.StatusSuspended: "User suspended successfully",
	user.StatusBanned:    "User banned successfully",
}

func (uc *UpdateUserStatusUseCase) action(status user.Status) mutation.Action[UpdateUserStatusInput] {
	return mutation.Action[UpdateUserStatusInput]{
		Name:           "updateUserStatus",
		SuccessMessage: statusMessages[status],
		FallbackError:  "Failed to update user status",
		Target:         func(in UpdateUserStatusInput) string { return in.UserID },
		Validate: func(in UpdateUserStatusInput) error {
			if strings.TrimSpace(in.UserID) == "" {
				return failure.Invalid("userId is required")
			}
			if !in.Status.Valid() {
				return failure.Invalid("status must be one of ACTIVE, SUSPENDED, BANNED")
			}
			return nil
		},
		Run: func(ctx context.Context, in UpdateUserStatusInput) (mutation.Result, error) {
			return uc.Repo.UpdateStatus(ctx, in.UserID, in.Status)
		},
	}
}

// Execute dispatches the status change and refetches the owning list on success.
func (uc *UpdateUserStatusUseCase) Execute(ctx context.Context, in UpdateUserStatusInput, refresh mutation.Refresher) mutation.Outcome {
	in.Status = user.Status(strings.ToUpper(string(in.Status)))
	return mutation.Execute(ctx, uc.Runner, uc.action(in.Status), in, refresh)
}
