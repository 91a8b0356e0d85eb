package usecase

import (
	"context"
	"strings"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	property "github.com/Chizihn/glubon-admin/internal/pkg/property/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/property/persistence/repository/port"
)

type UpdatePropertyStatusInput struct {
	PropertyID string
	Status     property.Status
	Reason     string
}

// UpdatePropertyStatusUseCase approves (ACTIVE), rejects or suspends a listing.
type UpdatePropertyStatusUseCase struct {
	Repo   repository.PropertyRepository
	Runner *mutation.Runner
}

func NewUpdatePropertyStatusUseCase(repo repository.PropertyRepository, runner *mutation.Runner) *UpdatePropertyStatusUseCase {
	return &UpdatePropertyStatusUseCase{Repo: repo, Runner: runner}
}

var statusMessages = map[property.Status]string{
	property.StatusActive:    "Property approved successfully",
	property.StatusRejected:  "Property rejected successfully",
	property.StatusSuspended: "Property suspended successfully",
}

func (uc *UpdatePropertyStatusUseCase) Execute(ctx context.Context, in UpdatePropertyStatusInput, refresh mutation.Refresher) mutation.Outcome {
	in.Status = property.Status(strings.ToUpper(string(in.Status)))
	in.Reason = strings.TrimSpace(in.Reason)
	action := mutation.Action[UpdatePropertyStatusInput]{
		Name:           "updatePropertyStatus",
		SuccessMessage: statusMessages[in.Status],
		FallbackError:  "Failed to update property status",
		Target:         func(in UpdatePropertyStatusInput) string { return in.PropertyID },
		Validate: func(in UpdatePropertyStatusInput) error {
			switch {
			case in.PropertyID == "":
				return failure.Invalid("propertyId is required")
			case !in.Status.Settable():
				return failure.Invalid("status must be one of ACTIVE, REJECTED, SUSPENDED")
			case in.Status == property.StatusRejected && in.Reason == "":
				return failure.Invalid("A reason is required to reject")
			}
			return nil
		},
		Run: func(ctx context.Context, in UpdatePropertyStatusInput) (mutation.Result, error) {
			var reason *string
			if in.Reason != "" {
				reason = &in.Reason
			}
			return uc.Repo.UpdateStatus(ctx, in.PropertyID, in.Status, reason)
		},
	}
	return mutation.Execute(ctx, uc.Runner, action, in, refresh)
}
