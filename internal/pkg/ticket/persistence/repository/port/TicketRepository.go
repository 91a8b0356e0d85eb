package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	ticket "github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/domain"
)

type TicketRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[ticket.Ticket], error)
	GetTicket(ctx context.Context, id string) (ticket.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status ticket.Status, resolution *string) (mutation.Result, error)
}
