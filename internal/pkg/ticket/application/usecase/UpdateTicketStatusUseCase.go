package usecase

import (
	"context"
	"strings"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/review"
	ticket "github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/ticket/persistence/repository/port"
)

type UpdateTicketStatusInput struct {
	TicketID   string
	Status     ticket.Status
	Resolution *string
}

// UpdateTicketStatusUseCase moves tickets between states. In the review modal an
// approval resolves the ticket and a rejection closes it with the reason as resolution.
type UpdateTicketStatusUseCase struct {
	Repo   repository.TicketRepository
	Runner *mutation.Runner
}

func NewUpdateTicketStatusUseCase(repo repository.TicketRepository, runner *mutation.Runner) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{Repo: repo, Runner: runner}
}

var statusMessages = map[ticket.Status]string{
	ticket.StatusOpen:       "Ticket reopened",
	ticket.StatusInProgress: "Ticket marked in progress",
	ticket.StatusResolved:   "Ticket resolved successfully",
	ticket.StatusClosed:     "Ticket closed",
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, in UpdateTicketStatusInput, refresh mutation.Refresher) mutation.Outcome {
	in.Status = ticket.Status(strings.ToUpper(string(in.Status)))
	if in.Resolution != nil {
		trimmed := strings.TrimSpace(*in.Resolution)
		in.Resolution = &trimmed
		if trimmed == "" {
			in.Resolution = nil
		}
	}
	return mutation.Execute(ctx, uc.Runner, mutation.Action[UpdateTicketStatusInput]{
		Name:           "updateTicketStatus",
		SuccessMessage: statusMessages[in.Status],
		FallbackError:  "Failed to update ticket",
		Target:         func(in UpdateTicketStatusInput) string { return in.TicketID },
		Validate: func(in UpdateTicketStatusInput) error {
			switch {
			case in.TicketID == "":
				return failure.Invalid("ticketId is required")
			case !in.Status.Valid():
				return failure.Invalid("status must be one of OPEN, IN_PROGRESS, RESOLVED, CLOSED")
			case in.Status == ticket.StatusClosed && in.Resolution == nil:
				return failure.Invalid("A reason is required to close a ticket")
			}
			return nil
		},
		Run: func(ctx context.Context, in UpdateTicketStatusInput) (mutation.Result, error) {
			return uc.Repo.UpdateStatus(ctx, in.TicketID, in.Status, in.Resolution)
		},
	}, in, refresh)
}

// Load opens a ticket in the review modal with its attachments.
func (uc *UpdateTicketStatusUseCase) Load(ctx context.Context, id string) (review.Record, error) {
	t, err := uc.Repo.GetTicket(ctx, id)
	if err != nil {
		return review.Record{}, err
	}
	if t.Status.Final() {
		return review.Record{}, failure.New(failure.KindBusiness, "Ticket is already "+strings.ToLower(string(t.Status)))
	}
	return review.Record{ID: t.ID, Title: t.Subject, Documents: t.Attachments, Payload: t}, nil
}

func (uc *UpdateTicketStatusUseCase) Decide(ctx context.Context, d review.Decision, refresh mutation.Refresher) mutation.Outcome {
	in := UpdateTicketStatusInput{TicketID: d.RecordID, Status: ticket.StatusResolved}
	if !d.Approved {
		in.Status = ticket.StatusClosed
		in.Resolution = d.Reason
	}
	return uc.Execute(ctx, in, refresh)
}
