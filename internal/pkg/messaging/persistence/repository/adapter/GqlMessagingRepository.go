package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

const (
	conversationsGroup = "conversations"
	// sendMessage only invalidates the thread; the conversations list is shadow-patched instead.
	messagesGroup = "messages"
)

const messageFields = `id conversationId content messageType isRead createdAt
    sender { id firstName lastName email role }`

var (
	listConversationsOp = graphql.Query("getConversations", conversationsGroup, `query GetConversations($filters: ConversationFilters) {
  getConversations(filters: $filters) {
    items {
      id unreadCount updatedAt
      participants { id firstName lastName email role }
      property { id title }
      lastMessage { content senderId createdAt }
    }
    totalCount totalPages currentPage hasNextPage hasPreviousPage
  }
}`)

	listMessagesOp = graphql.Query("getMessages", messagesGroup, `query GetMessages($conversationId: ID!, $page: Int, $limit: Int) {
  getMessages(conversationId: $conversationId, page: $page, limit: $limit) {
    items { `+messageFields+` }
    totalCount totalPages currentPage hasNextPage hasPreviousPage
  }
}`)

	sendMessageOp = graphql.Mutation("sendMessage", messagesGroup, `mutation SendMessage($input: SendMessageInput!) {
  sendMessage(input: $input) { `+messageFields+` }
}`)

	sendBroadcastOp = graphql.Mutation("sendBroadcastMessage", conversationsGroup, `mutation SendBroadcastMessage($input: BroadcastMessageInput!) {
  sendBroadcastMessage(input: $input) { success message }
}`)

	// MessageSent streams the messages posted to one conversation.
	MessageSent = graphql.Subscription("messageSent", `subscription MessageSent($conversationId: ID!) {
  messageSent(conversationId: $conversationId) { `+messageFields+` }
}`)
)

type GqlMessagingRepository struct {
	client  *graphql.Client
	shadows repository.ShadowStore
}

func NewGqlMessagingRepository(client *graphql.Client, shadows repository.ShadowStore) *GqlMessagingRepository {
	return &GqlMessagingRepository{client: client, shadows: shadows}
}

var _ repository.MessagingRepository = (*GqlMessagingRepository)(nil)

// FetchConversations returns the list with any newer shadow previews applied.
func (r *GqlMessagingRepository) FetchConversations(ctx context.Context, params paging.Params) (paging.Page[messaging.Conversation], error) {
	var out struct {
		GetConversations paging.ItemsEnvelope[messaging.Conversation] `json:"getConversations"`
	}
	if err := r.client.Query(ctx, listConversationsOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[messaging.Conversation]{}, err
	}
	page := out.GetConversations.Page(params)
	if r.shadows != nil {
		for i, c := range page.Items {
			if sh, ok := r.shadows.Get(ctx, c.ID); ok {
				page.Items[i] = c.Overlay(sh)
			}
		}
	}
	return page, nil
}

// FetchPage lets the repository back the conversations screen directly.
func (r *GqlMessagingRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[messaging.Conversation], error) {
	return r.FetchConversations(ctx, params)
}

func (r *GqlMessagingRepository) FetchMessages(ctx context.Context, conversationID string, params paging.Params) (paging.Page[messaging.Message], error) {
	params = params.Normalized()
	var out struct {
		GetMessages paging.ItemsEnvelope[messaging.Message] `json:"getMessages"`
	}
	vars := graphql.Vars{"conversationId": conversationID, "page": params.Page, "limit": params.Limit}
	if err := r.client.Query(ctx, listMessagesOp, vars, &out); err != nil {
		return paging.Page[messaging.Message]{}, err
	}
	return out.GetMessages.Page(params), nil
}

func (r *GqlMessagingRepository) SendMessage(ctx context.Context, m messaging.Message) (messaging.Message, error) {
	var out struct {
		SendMessage messaging.Message `json:"sendMessage"`
	}
	input := map[string]any{"conversationId": m.ConversationID, "content": m.Content, "messageType": string(m.MessageType)}
	if err := r.client.Mutate(ctx, sendMessageOp, graphql.Vars{"input": input}, &out); err != nil {
		return messaging.Message{}, err
	}
	return out.SendMessage, nil
}

func (r *GqlMessagingRepository) SendBroadcast(ctx context.Context, b messaging.Broadcast) (mutation.Result, error) {
	input := map[string]any{"content": b.Content, "messageType": string(messaging.MessageBroadcast)}
	if len(b.RecipientRoles) > 0 {
		input["recipientRoles"] = b.RecipientRoles
	} else {
		input["recipientIds"] = b.RecipientIDs
	}
	var out struct {
		SendBroadcastMessage mutation.Result `json:"sendBroadcastMessage"`
	}
	err := r.client.Mutate(ctx, sendBroadcastOp, graphql.Vars{"input": input}, &out)
	return out.SendBroadcastMessage, err
}
