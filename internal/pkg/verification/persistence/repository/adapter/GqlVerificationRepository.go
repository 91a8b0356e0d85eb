package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	verification "github.com/Chizihn/glubon-admin/internal/pkg/verification/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/verification/persistence/repository/port"
)

const group = "verifications"

const verificationFields = `id documentType documentNumber documentImages status rejectionReason reviewedBy createdAt
    user { id firstName lastName email }`

var (
	listVerificationsOp = graphql.Query("getAllVerifications", group, `query GetAllVerifications($filters: AdminVerificationFilters) {
  getAllVerifications(filters: $filters) {
    items { `+verificationFields+` }
    totalCount totalPages currentPage hasNextPage hasPreviousPage
  }
}`)

	getVerificationOp = graphql.Query("getVerificationById", group, `query GetVerificationById($verificationId: ID!) {
  getVerificationById(verificationId: $verificationId) { `+verificationFields+` }
}`)

	// Reviewing also changes the applicant's isVerified flag.
	reviewOp = graphql.Mutation("reviewVerification", group, `mutation ReviewVerification($input: ReviewVerificationInput!) {
  reviewVerification(input: $input) { success message }
}`)
)

type GqlVerificationRepository struct {
	client *graphql.Client
}

func NewGqlVerificationRepository(client *graphql.Client) *GqlVerificationRepository {
	return &GqlVerificationRepository{client: client}
}

var _ repository.VerificationRepository = (*GqlVerificationRepository)(nil)

func (r *GqlVerificationRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[verification.Verification], error) {
	var out struct {
		GetAllVerifications paging.ItemsEnvelope[verification.Verification] `json:"getAllVerifications"`
	}
	if err := r.client.Query(ctx, listVerificationsOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[verification.Verification]{}, err
	}
	return out.GetAllVerifications.Page(params), nil
}

func (r *GqlVerificationRepository) GetVerification(ctx context.Context, id string) (verification.Verification, error) {
	var out struct {
		GetVerificationByID *verification.Verification `json:"getVerificationById"`
	}
	if err := r.client.Query(ctx, getVerificationOp, graphql.Vars{"verificationId": id}, &out); err != nil {
		return verification.Verification{}, err
	}
	if out.GetVerificationByID == nil {
		return verification.Verification{}, failure.New(failure.KindNotFound, "Verification not found")
	}
	return *out.GetVerificationByID, nil
}

func (r *GqlVerificationRepository) Review(ctx context.Context, id string, approved bool, reason *string) (mutation.Result, error) {
	input := map[string]any{"verificationId": id, "approved": approved}
	if reason != nil {
		input["reason"] = *reason
	}
	var out struct {
		ReviewVerification mutation.Result `json:"reviewVerification"`
	}
	err := r.client.Mutate(ctx, reviewOp, graphql.Vars{"input": input}, &out)
	return out.ReviewVerification, err
}
