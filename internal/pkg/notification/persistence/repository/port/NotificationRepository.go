package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	notification "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/domain"
)

type NotificationRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[notification.Notification], error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) (mutation.Result, error)
	MarkAllRead(ctx context.Context) (mutation.Result, error)
}
