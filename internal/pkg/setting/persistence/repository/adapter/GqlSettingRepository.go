package adapter

import (
	"context"
	"strings"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	setting "github.com/Chizihn/glubon-admin/internal/pkg/setting/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/setting/persistence/repository/port"
)

const group = "settings"

var (
	listSettingsOp = graphql.Query("getPlatformSettings", group, `query GetPlatformSettings {
  getPlatformSettings { key value description category updatedAt }
}`)

	updateSettingOp = graphql.Mutation("updatePlatformSetting", group, `mutation UpdatePlatformSetting($input: UpdatePlatformSettingInput!) {
  updatePlatformSetting(input: $input) { success message }
}`)
)

type GqlSettingRepository struct {
	client *graphql.Client
}

func NewGqlSettingRepository(client *graphql.Client) *GqlSettingRepository {
	return &GqlSettingRepository{client: client}
}

var _ repository.SettingRepository = (*GqlSettingRepository)(nil)

// FetchPage loads the whole list and pages it locally; the backend does not paginate settings.
func (r *GqlSettingRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[setting.Setting], error) {
	var out struct {
		GetPlatformSettings []setting.Setting `json:"getPlatformSettings"`
	}
	if err := r.client.Query(ctx, listSettingsOp, nil, &out); err != nil {
		return paging.Page[setting.Setting]{}, err
	}
	all := out.GetPlatformSettings
	if category, _ := params.Filters["category"].(string); category != "" {
		kept := all[:0:0]
		for _, s := range all {
			if strings.EqualFold(s.Category, category) {
				kept = append(kept, s)
			}
		}
		all = kept
	}
	return paging.Slice(all, params), nil
}

func (r *GqlSettingRepository) Update(ctx context.Context, in setting.UpdateInput) (mutation.Result, error) {
	var out struct {
		UpdatePlatformSetting mutation.Result `json:"updatePlatformSetting"`
	}
	err := r.client.Mutate(ctx, updateSettingOp, graphql.Vars{"input": in}, &out)
	return out.UpdatePlatformSetting, err
}
