package repository

import (
	"context"

	audit "github.com/Chizihn/glubon-admin/internal/pkg/audit/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

// AuditRepository stores the trail the mutation runner records and lists it back.
type AuditRepository interface {
	mutation.Recorder
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[audit.Entry], error)
}
