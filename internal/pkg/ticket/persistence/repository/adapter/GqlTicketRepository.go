package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	ticket "github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/ticket/persistence/repository/port"
)

const group = "tickets"

const ticketFields = `id subject description status priority category attachments resolution createdAt
    createdBy { id firstName lastName email }`

var (
	listTicketsOp = graphql.Query("getAllTickets", group, `query GetAllTickets($filters: TicketFilters) {
  getAllTickets(filters: $filters) {
    items { `+ticketFields+` }
    totalCount totalPages currentPage hasNextPage hasPreviousPage
  }
}`)

	getTicketOp = graphql.Query("getTicketById", group, `query GetTicketById($ticketId: ID!) {
  getTicketById(ticketId: $ticketId) { `+ticketFields+` }
}`)

	updateStatusOp = graphql.Mutation("updateTicketStatus", group, `mutation UpdateTicketStatus($ticketId: ID!, $status: TicketStatus!, $resolution: String) {
  updateTicketStatus(ticketId: $ticketId, status: $status, resolution: $resolution) { success message }
}`)
)

type GqlTicketRepository struct {
	client *graphql.Client
}

func NewGqlTicketRepository(client *graphql.Client) *GqlTicketRepository {
	return &GqlTicketRepository{client: client}
}

var _ repository.TicketRepository = (*GqlTicketRepository)(nil)

func (r *GqlTicketRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[ticket.Ticket], error) {
	var out struct {
		GetAllTickets paging.ItemsEnvelope[ticket.Ticket] `json:"getAllTickets"`
	}
	if err := r.client.Query(ctx, listTicketsOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[ticket.Ticket]{}, err
	}
	return out.GetAllTickets.Page(params), nil
}

func (r *GqlTicketRepository) GetTicket(ctx context.Context, id string) (ticket.Ticket, error) {
	var out struct {
		GetTicketByID *ticket.Ticket `json:"getTicketById"`
	}
	if err := r.client.Query(ctx, getTicketOp, graphql.Vars{"ticketId": id}, &out); err != nil {
		return ticket.Ticket{}, err
	}
	if out.GetTicketByID == nil {
		return ticket.Ticket{}, failure.New(failure.KindNotFound, "Ticket not found")
	}
	return *out.GetTicketByID, nil
}

func (r *GqlTicketRepository) UpdateStatus(ctx context.Context, id string, status ticket.Status, resolution *string) (mutation.Result, error) {
	var out struct {
		UpdateTicketStatus mutation.Result `json:"updateTicketStatus"`
	}
	err := r.client.Mutate(ctx, updateStatusOp, graphql.Vars{"ticketId": id, "status": string(status), "resolution": resolution}, &out)
	return out.UpdateTicketStatus, err
}
