package usecase

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/notification/persistence/repository/port"
)

type MarkReadUseCase struct {
	Repo   repository.NotificationRepository
	Runner *mutation.Runner
}

func NewMarkReadUseCase(repo repository.NotificationRepository, runner *mutation.Runner) *MarkReadUseCase {
	return &MarkReadUseCase{Repo: repo, Runner: runner}
}

func (uc *MarkReadUseCase) One(ctx context.Context, id string, refresh mutation.Refresher) mutation.Outcome {
	return mutation.Execute(ctx, uc.Runner, mutation.Action[string]{
		Name:           "markNotificationAsRead",
		SuccessMessage: "Notification marked as read",
		FallbackError:  "Failed to update notification",
		Target:         func(id string) string { return id },
		Validate: func(id string) error {
			if id == "" {
				return failure.Invalid("notificationId is required")
			}
			return nil
		},
		Run: uc.Repo.MarkRead,
	}, id, refresh)
}

// All marks every notification of the acting admin as read.
func (uc *MarkReadUseCase) All(ctx context.Context, refresh mutation.Refresher) mutation.Outcome {
	actor := mutation.ActorFrom(ctx)
	return mutation.Execute(ctx, uc.Runner, mutation.Action[string]{
		Name:           "markAllNotificationsAsRead",
		SuccessMessage: "All notifications marked as read",
		FallbackError:  "Failed to update notifications",
		Target:         func(actor string) string { return actor },
		Run: func(ctx context.Context, _ string) (mutation.Result, error) {
			return uc.Repo.MarkAllRead(ctx)
		},
	}, actor, refresh)
}
