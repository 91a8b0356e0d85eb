package adapter

import (
	"context"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/session/persistence/repository/port"
)

const userFields = `id email firstName lastName phoneNumber role profilePic`

var (
	loginOp = graphql.Mutation("login", "", `mutation Login($input: LoginInput!) {
  login(input: $input) { accessToken user { `+userFields+` } }
}`)
	meOp = graphql.Query("me", "", `query Me { me { `+userFields+` } }`)

	updateProfileOp = graphql.Mutation("updateProfile", "", `mutation UpdateProfile($input: UpdateProfileInput!) {
  updateProfile(input: $input) { `+userFields+` }
}`)
)

// GqlAuthenticator implements the Authenticator port against the platform API.
type GqlAuthenticator struct {
	client *graphql.Client
}

func NewGqlAuthenticator(client *graphql.Client) *GqlAuthenticator {
	return &GqlAuthenticator{client: client}
}

var _ repository.Authenticator = (*GqlAuthenticator)(nil)

func (a *GqlAuthenticator) Login(ctx context.Context, email, password string) (string, session.Admin, error) {
	var out struct {
		Login struct {
			AccessToken string        `json:"accessToken"`
			User        session.Admin `json:"user"`
		} `json:"login"`
	}
	vars := graphql.Vars{"input": map[string]any{"email": email, "password": password}}
	if err := a.client.Mutate(ctx, loginOp, vars, &out); err != nil {
		return "", session.Admin{}, err
	}
	return out.Login.AccessToken, out.Login.User, nil
}

func (a *GqlAuthenticator) Me(ctx context.Context, token string) (session.Admin, error) {
	var out struct {
		Me session.Admin `json:"me"`
	}
	if err := a.client.Query(graphql.WithToken(ctx, token), meOp, nil, &out); err != nil {
		return session.Admin{}, err
	}
	return out.Me, nil
}

func (a *GqlAuthenticator) UpdateProfile(ctx context.Context, token string, in session.ProfileInput) (session.Admin, error) {
	var out struct {
		UpdateProfile session.Admin `json:"updateProfile"`
	}
	input := map[string]any{}
	if in.FirstName != nil {
		input["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		input["lastName"] = *in.LastName
	}
	if in.PhoneNumber != nil {
		input["phoneNumber"] = *in.PhoneNumber
	}
	if err := a.client.Mutate(graphql.WithToken(ctx, token), updateProfileOp, graphql.Vars{"input": input}, &out); err != nil {
		return session.Admin{}, err
	}
	return out.UpdateProfile, nil
}
