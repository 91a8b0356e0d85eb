package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	property "github.com/Chizihn/glubon-admin/internal/pkg/property/application/domain"
)

type PropertyRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[property.Property], error)
	GetProperty(ctx context.Context, id string) (property.Property, error)
	UpdateStatus(ctx context.Context, id string, status property.Status, reason *string) (mutation.Result, error)
	SetFeatured(ctx context.Context, id string, featured bool) (mutation.Result, error)
	VerifyOwnership(ctx context.Context, id string, approved bool, reason *string) (mutation.Result, error)
}
