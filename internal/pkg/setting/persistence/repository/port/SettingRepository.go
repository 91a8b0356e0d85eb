package repository

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	setting "github.com/Chizihn/glubon-admin/internal/pkg/setting/application/domain"
)

type SettingRepository interface {
	FetchPage(ctx context.Context, params paging.Params) (paging.Page[setting.Setting], error)
	Update(ctx context.Context, in setting.UpdateInput) (mutation.Result, error)
}
