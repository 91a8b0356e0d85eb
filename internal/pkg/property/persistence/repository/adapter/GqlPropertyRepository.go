package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	property "github.com/Chizihn/glubon-admin/internal/pkg/property/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/property/persistence/repository/port"
)

const group = "properties"

const propertyFields = `id title address city state amount status featured ownershipVerified createdAt
    owner { id firstName lastName email }
    stats { views likes conversations }`

var (
	listPropertiesOp = graphql.Query("getAllProperties", group, `query GetAllProperties($filters: AdminPropertyFilters) {
  getAllProperties(filters: $filters) {
    data { `+propertyFields+` }
    pagination { page limit total totalPages hasMore }
  }
}`)

	getPropertyOp = graphql.Query("getPropertyById", group, `query GetPropertyById($propertyId: ID!) {
  getPropertyById(propertyId: $propertyId) {
    `+propertyFields+`
    images ownershipProofs
  }
}`)

	updateStatusOp = graphql.Mutation("updatePropertyStatus", group, `mutation UpdatePropertyStatus($propertyId: ID!, $status: PropertyStatus!, $reason: String) {
  updatePropertyStatus(propertyId: $propertyId, status: $status, reason: $reason) { success message }
}`)

	featuredOp = graphql.Mutation("togglePropertyFeatured", group, `mutation TogglePropertyFeatured($propertyId: ID!, $featured: Boolean!) {
  togglePropertyFeatured(propertyId: $propertyId, featured: $featured) { success message }
}`)

	ownershipOp = graphql.Mutation("verifyPropertyOwnership", group, `mutation VerifyPropertyOwnership($propertyId: ID!, $approved: Boolean!, $reason: String) {
  verifyPropertyOwnership(propertyId: $propertyId, approved: $approved, reason: $reason) { success message }
}`)
)

type GqlPropertyRepository struct {
	client *graphql.Client
}

func NewGqlPropertyRepository(client *graphql.Client) *GqlPropertyRepository {
	return &GqlPropertyRepository{client: client}
}

var _ repository.PropertyRepository = (*GqlPropertyRepository)(nil)

func (r *GqlPropertyRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[property.Property], error) {
	var out struct {
		GetAllProperties paging.DataEnvelope[property.Property] `json:"getAllProperties"`
	}
	if err := r.client.Query(ctx, listPropertiesOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[property.Property]{}, err
	}
	return out.GetAllProperties.Page(params), nil
}

func (r *GqlPropertyRepository) GetProperty(ctx context.Context, id string) (property.Property, error) {
	var out struct {
		GetPropertyByID *property.Property `json:"getPropertyById"`
	}
	if err := r.client.Query(ctx, getPropertyOp, graphql.Vars{"propertyId": id}, &out); err != nil {
		return property.Property{}, err
	}
	if out.GetPropertyByID == nil {
		return property.Property{}, failure.New(failure.KindNotFound, "Property not found")
	}
	return *out.GetPropertyByID, nil
}

func (r *GqlPropertyRepository) UpdateStatus(ctx context.Context, id string, status property.Status, reason *string) (mutation.Result, error) {
	var out struct {
		UpdatePropertyStatus mutation.Result `json:"updatePropertyStatus"`
	}
	err := r.client.Mutate(ctx, updateStatusOp, graphql.Vars{"propertyId": id, "status": string(status), "reason": reason}, &out)
	return out.UpdatePropertyStatus, err
}

func (r *GqlPropertyRepository) SetFeatured(ctx context.Context, id string, featured bool) (mutation.Result, error) {
	var out struct {
		TogglePropertyFeatured mutation.Result `json:"togglePropertyFeatured"`
	}
	err := r.client.Mutate(ctx, featuredOp, graphql.Vars{"propertyId": id, "featured": featured}, &out)
	return out.TogglePropertyFeatured, err
}

func (r *GqlPropertyRepository) VerifyOwnership(ctx context.Context, id string, approved bool, reason *string) (mutation.Result, error) {
	var out struct {
		VerifyPropertyOwnership mutation.Result `json:"verifyPropertyOwnership"`
	}
	err := r.client.Mutate(ctx, ownershipOp, graphql.Vars{"propertyId": id, "approved": approved, "reason": reason}, &out)
	return out.VerifyPropertyOwnership, err
}
