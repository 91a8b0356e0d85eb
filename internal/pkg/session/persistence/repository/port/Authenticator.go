package repository

import (
	"context"

	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
)

// Authenticator is the identity half of the backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token string, user session.Admin, err error)
	// Me resolves the account owning token.
	Me(ctx context.Context, token string) (session.Admin, error)
	UpdateProfile(ctx context.Context, token string, in session.ProfileInput) (session.Admin, error)
}
