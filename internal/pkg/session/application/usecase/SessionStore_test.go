package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
)

type fakeAuth struct {
	token   string
	user    session.Admin
	err     error
	meCalls int
}

func (f *fakeAuth) Login(context.Context, string, string) (string, session.Admin, error) {
	return f.token, f.user, f.err
}

func (f *fakeAuth) Me(context.Context, string) (session.Admin, error) {
	f.meCalls++
	return f.user, f.err
}

func (f *fakeAuth) UpdateProfile(_ context.Context, _ string, in session.ProfileInput) (session.Admin, error) {
	u := f.user
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	return u, f.err
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a1", "exp": exp.Unix()}).SignedString([]byte("test"))
	require.NoError(t, err)
	return tok
}

var admin = session.Admin{ID: "a1", Email: "ops@glubon.com", FirstName: "Ops", Role: session.RoleAdmin}

func TestLoginPersistsSession(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour)
	auth := &fakeAuth{token: signed(t, exp), user: admin}
	store := NewStore(auth, adapter.NewMemoryCache(), 24*time.Hour)
	ctx := context.Background()

	sess, err := store.Login(ctx, "ops@glubon.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a1", sess.User.ID)
	assert.WithinDuration(t, exp, sess.ExpiresAt, time.Second, "token exp caps the session ttl")

	again, err := store.Initialize(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User, again.User)
	assert.Equal(t, 0, auth.meCalls, "served from the store")
}

func TestLoginValidatesBeforeCallingBackend(t *testing.T) {
	store := NewStore(&fakeAuth{err: failure.New(failure.KindBusiness, "should not be called")}, adapter.NewMemoryCache(), 0)

	_, err := store.Login(context.Background(), "not-an-email", "x")
	assert.ErrorIs(t, err, failure.Validation)
	_, err = store.Login(context.Background(), "ops@glubon.com", "")
	assert.ErrorIs(t, err, failure.Validation)
}

func TestLoginRejectsNonAdmins(t *testing.T) {
	tenant := admin
	tenant.Role = "RENTER"
	store := NewStore(&fakeAuth{token: "opaque", user: tenant}, adapter.NewMemoryCache(), time.Hour)

	_, err := store.Login(context.Background(), "ops@glubon.com", "secret")
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.ErrorIs(t, err, failure.Auth)
}

func TestInitializeResolvesUnknownToken(t *testing.T) {
	auth := &fakeAuth{user: admin}
	store := NewStore(auth, adapter.NewMemoryCache(), time.Hour)

	sess, err := store.Initialize(context.Background(), "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, 1, auth.meCalls)
	assert.Equal(t, "opaque-token", sess.Token)
}

func TestInitializeRejectsExpired(t *testing.T) {
	auth := &fakeAuth{user: admin}
	store := NewStore(auth, adapter.NewMemoryCache(), time.Hour)

	_, err := store.Initialize(context.Background(), signed(t, time.Now().Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, 0, auth.meCalls)

	_, err = store.Initialize(context.Background(), "  ")
	assert.ErrorIs(t, err, failure.Auth)
}

func TestStoredSessionExpires(t *testing.T) {
	c := adapter.NewMemoryCache()
	store := NewStore(&fakeAuth{token: "opaque", user: admin}, c, time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess, err := store.Login(context.Background(), "ops@glubon.com", "secret")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	store.Auth = &fakeAuth{err: failure.New(failure.KindAuth, "Unauthorized")}
	_, err = store.Initialize(context.Background(), sess.Token)
	assert.ErrorIs(t, err, failure.Auth)
}

func TestLogoutAndUpdateUser(t *testing.T) {
	auth := &fakeAuth{token: "opaque", user: admin}
	store := NewStore(auth, adapter.NewMemoryCache(), time.Hour)
	ctx := context.Background()
	sess, err := store.Login(ctx, "ops@glubon.com", "secret")
	require.NoError(t, err)

	name := "Operations"
	updated, err := store.UpdateUser(ctx, sess.Token, session.ProfileInput{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Operations", updated.User.FirstName)

	blank := " "
	_, err = store.UpdateUser(ctx, sess.Token, session.ProfileInput{LastName: &blank})
	assert.ErrorIs(t, err, failure.Validation)

	require.NoError(t, store.Logout(ctx, sess.Token))
	require.NoError(t, store.Logout(ctx, ""))

	auth.meCalls = 0
	_, err = store.Initialize(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, auth.meCalls, "logged-out token is no longer cached")
}
