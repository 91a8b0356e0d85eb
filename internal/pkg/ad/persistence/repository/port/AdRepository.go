package repository

import (
	"context"

	ad "github.com/Chizihn/glubon-admin/internal/pkg/ad/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

type AdRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[ad.Ad], error)
	Create(ctx context.Context, in ad.CreateInput) (ad.Ad, error)
	SetActive(ctx context.Context, id string, active bool) (mutation.Result, error)
	Delete(ctx context.Context, id string) (mutation.Result, error)
}
