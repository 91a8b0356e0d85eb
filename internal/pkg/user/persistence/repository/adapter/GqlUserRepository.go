package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	user "github.com/Chizihn/glubon-admin/internal/pkg/user/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/user/persistence/repository/port"
)

const group = "users"

const userFields = `id email firstName lastName phoneNumber role status isVerified isActive lastLogin createdAt`

var (
	listUsersOp = graphql.Query("getAllUsers", group, `query GetAllUsers($filters: AdminUserFilters) {
  getAllUsers(filters: $filters) {
    items { `+userFields+` }
    totalCount totalPages currentPage hasNextPage hasPreviousPage
  }
}`)

	getUserOp = graphql.Query("getUserById", group, `query GetUserById($userId: ID!) {
  getUserById(userId: $userId) {
    `+userFields+`
    stats { properties conversations likes views }
  }
}`)

	updateStatusOp = graphql.Mutation("updateUserStatus", group, `mutation UpdateUserStatus($userId: ID!, $status: UserStatus!) {
  updateUserStatus(userId: $userId, status: $status) { success message }
}`)
)

type GqlUserRepository struct {
	client *graphql.Client
}

func NewGqlUserRepository(client *graphql.Client) *GqlUserRepository {
	return &GqlUserRepository{client: client}
}

var _ repository.UserRepository = (*GqlUserRepository)(nil)

func (r *GqlUserRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[user.User], error) {
	var out struct {
		GetAllUsers paging.ItemsEnvelope[user.User] `json:"getAllUsers"`
	}
	if err := r.client.Query(ctx, listUsersOp, graphql.Vars{"filters": graphql.FilterInput(params)}, &out); err != nil {
		return paging.Page[user.User]{}, err
	}
	return out.GetAllUsers.Page(params), nil
}

func (r *GqlUserRepository) GetUser(ctx context.Context, id string) (user.Detail, error) {
	var out struct {
		GetUserByID *user.Detail `json:"getUserById"`
	}
	if err := r.client.Query(ctx, getUserOp, graphql.Vars{"userId": id}, &out); err != nil {
		return user.Detail{}, err
	}
	if out.GetUserByID == nil {
		return user.Detail{}, failure.New(failure.KindNotFound, "User not found")
	}
	return *out.GetUserByID, nil
}

func (r *GqlUserRepository) UpdateStatus(ctx context.Context, id string, status user.Status) (mutation.Result, error) {
	var out struct {
		UpdateUserStatus mutation.Result `json:"updateUserStatus"`
	}
	err := r.client.Mutate(ctx, updateStatusOp, graphql.Vars{"userId": id, "status": string(status)}, &out)
	return out.UpdateUserStatus, err
}
