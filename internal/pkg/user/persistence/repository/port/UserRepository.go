package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	user "github.com/Chizihn/glubon-admin/internal/pkg/user/application/domain"
)

// UserRepository is the backend capability set of the users screen.
type UserRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[user.User], error)
	GetUser(ctx context.Context, id string) (user.Detail, error)
	UpdateStatus(ctx context.Context, id string, status user.Status) (mutation.Result, error)
}
