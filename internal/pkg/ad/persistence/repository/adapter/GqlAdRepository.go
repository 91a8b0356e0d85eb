package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	ad "github.com/Chizihn/glubon-admin/internal/pkg/ad/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/ad/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

const group = "ads"

const adFields = `id title description imageUrl targetUrl position type status isActive
    startDate endDate budget costPerClick impressions clicks createdAt`

var (
	listAdsOp = graphql.Query("getAds", group, `query GetAds($filters: AdFilters) {
  getAds(filters: $filters) {
    data { `+adFields+` }
    pagination { page limit total totalPages hasMore }
  }
}`)

	createAdOp = graphql.Mutation("createAd", group, `mutation CreateAd($input: CreateAdInput!) {
  createAd(input: $input) { `+adFields+` }
}`)

	setActiveOp = graphql.Mutation("updateAdStatus", group, `mutation UpdateAdStatus($adId: ID!, $isActive: Boolean!) {
  updateAdStatus(adId: $adId, isActive: $isActive) { success message }
}`)

	deleteAdOp = graphql.Mutation("deleteAd", group, `mutation DeleteAd($adId: ID!) {
  deleteAd(adId: $adId) { success message }
}`)
)

type GqlAdRepository struct {
	client *graphql.Client
}

func NewGqlAdRepository(client *graphql.Client) *GqlAdRepository {
	return &GqlAdRepository{client: client}
}

var _ repository.AdRepository = (*GqlAdRepository)(nil)

func (r *GqlAdRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[ad.Ad], error) {
	var out struct {
		GetAds paging.DataEnvelope[ad.Ad] `json:"getAds"`
	}
	if err := r.client.Query(ctx, listAdsOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[ad.Ad]{}, err
	}
	return out.GetAds.Page(params), nil
}

func (r *GqlAdRepository) Create(ctx context.Context, in ad.CreateInput) (ad.Ad, error) {
	var out struct {
		CreateAd ad.Ad `json:"createAd"`
	}
	if err := r.client.Mutate(ctx, createAdOp, graphql.Vars{"input": in}, &out); err != nil {
		return ad.Ad{}, err
	}
	return out.CreateAd, nil
}

func (r *GqlAdRepository) SetActive(ctx context.Context, id string, active bool) (mutation.Result, error) {
	var out struct {
		UpdateAdStatus mutation.Result `json:"updateAdStatus"`
	}
	err := r.client.Mutate(ctx, setActiveOp, graphql.Vars{"adId": id, "isActive": active}, &out)
	return out.UpdateAdStatus, err
}

func (r *GqlAdRepository) Delete(ctx context.Context, id string) (mutation.Result, error) {
	var out struct {
		DeleteAd mutation.Result `json:"deleteAd"`
	}
	err := r.client.Mutate(ctx, deleteAdOp, graphql.Vars{"adId": id}, &out)
	return out.DeleteAd, err
}
