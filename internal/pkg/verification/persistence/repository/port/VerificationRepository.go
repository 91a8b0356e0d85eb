package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	verification "github.com/Chizihn/glubon-admin/internal/pkg/verification/application/domain"
)

type VerificationRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[verification.Verification], error)
	GetVerification(ctx context.Context, id string) (verification.Verification, error)
	Review(ctx context.Context, id string, approved bool, reason *string) (mutation.Result, error)
}
