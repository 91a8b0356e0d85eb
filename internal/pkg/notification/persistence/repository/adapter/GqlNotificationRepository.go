package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	notification "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/notification/persistence/repository/port"
)

const group = "notifications"

var (
	listNotificationsOp = graphql.Query("getNotifications", group, `query GetNotifications($filters: NotificationFilters) {
  getNotifications(filters: $filters) {
    items { id title message type isRead data createdAt }
    totalCount totalPages currentPage hasNextPage hasPreviousPage
  }
}`)

	// no cache group: every poll reads the backend
	unreadCountOp = graphql.Query("getUnreadNotificationsCount", "", `query GetUnreadNotificationsCount {
  getUnreadNotificationsCount
}`)

	markReadOp = graphql.Mutation("markNotificationAsRead", group, `mutation MarkNotificationAsRead($notificationId: ID!) {
  markNotificationAsRead(notificationId: $notificationId) { success message }
}`)

	markAllReadOp = graphql.Mutation("markAllNotificationsAsRead", group, `mutation MarkAllNotificationsAsRead {
  markAllNotificationsAsRead { success message }
}`)
)

type GqlNotificationRepository struct {
	client *graphql.Client
}

func NewGqlNotificationRepository(client *graphql.Client) *GqlNotificationRepository {
	return &GqlNotificationRepository{client: client}
}

var _ repository.NotificationRepository = (*GqlNotificationRepository)(nil)

func (r *GqlNotificationRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[notification.Notification], error) {
	var out struct {
		GetNotifications paging.ItemsEnvelope[notification.Notification] `json:"getNotifications"`
	}
	if err := r.client.Query(ctx, listNotificationsOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[notification.Notification]{}, err
	}
	return out.GetNotifications.Page(params), nil
}

func (r *GqlNotificationRepository) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"getUnreadNotificationsCount"`
	}
	if err := r.client.Query(ctx, unreadCountOp, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (r *GqlNotificationRepository) MarkRead(ctx context.Context, id string) (mutation.Result, error) {
	var out struct {
		MarkNotificationAsRead mutation.Result `json:"markNotificationAsRead"`
	}
	err := r.client.Mutate(ctx, markReadOp, graphql.Vars{"notificationId": id}, &out)
	return out.MarkNotificationAsRead, err
}

func (r *GqlNotificationRepository) MarkAllRead(ctx context.Context) (mutation.Result, error) {
	var out struct {
		MarkAllNotificationsAsRead mutation.Result `json:"markAllNotificationsAsRead"`
	}
	err := r.client.Mutate(ctx, markAllReadOp, nil, &out)
	return out.MarkAllNotificationsAsRead, err
}
