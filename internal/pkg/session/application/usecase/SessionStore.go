package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	cache "github.com/Chizihn/glubon-admin/internal/infrastructure/cache/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/session/persistence/repository/port"
)

// ErrNotAdmin rejects accounts without dashboard access.
var ErrNotAdmin = failure.New(failure.KindAuth, "Access denied. Admin privileges required.")

// ErrNoSession is returned for a missing, unknown or expired token.
var ErrNoSession = failure.New(failure.KindAuth, "Authentication required")

// Store owns the admin session lifecycle: Initialize, Login, Logout and UpdateUser.
type Store struct {
	Auth  repository.Authenticator
	Cache cache.Cache
	TTL   time.Duration

	now func() time.Time
}

func NewStore(auth repository.Authenticator, c cache.Cache, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{Auth: auth, Cache: c, TTL: ttl, now: time.Now}
}

// Initialize restores the session for a persisted token, asking the backend who owns
// it when the cache no longer knows.
func (s *Store) Initialize(ctx context.Context, token string) (session.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return session.Session{}, ErrNoSession
	}
	now := s.now()
	if exp, ok := tokenExpiry(token); ok && !now.Before(exp) {
		s.forget(ctx, token)
		return session.Session{}, ErrNoSession
	}

	if sess, ok := s.load(ctx, token); ok {
		if !sess.Expired(now) {
			return sess, nil
		}
		s.forget(ctx, token)
		return session.Session{}, ErrNoSession
	}

	user, err := s.Auth.Me(ctx, token)
	if err != nil {
		return session.Session{}, err
	}
	if !user.IsAdmin() {
		return session.Session{}, ErrNotAdmin
	}
	return s.save(ctx, token, user)
}

// Login signs an admin in and persists the new session.
func (s *Store) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return session.Session{}, failure.Invalid("a valid email is required")
	}
	if password == "" {
		return session.Session{}, failure.Invalid("password is required")
	}

	token, user, err := s.Auth.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}
	if token == "" {
		return session.Session{}, failure.New(failure.KindBusiness, "login returned no token")
	}
	if !user.IsAdmin() {
		return session.Session{}, ErrNotAdmin
	}
	return s.save(ctx, token, user)
}

// Logout drops the session. It is safe to call for unknown tokens.
func (s *Store) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_, err := s.Cache.Del(ctx, key(token))
	return err
}

// UpdateUser saves profile changes through the backend and refreshes the stored user.
func (s *Store) UpdateUser(ctx context.Context, token string, in session.ProfileInput) (session.Session, error) {
	sess, err := s.Initialize(ctx, token)
	if err != nil {
		return session.Session{}, err
	}
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		return session.Session{}, failure.Invalid("first name cannot be empty")
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		return session.Session{}, failure.Invalid("last name cannot be empty")
	}
	user, err := s.Auth.UpdateProfile(ctx, token, in)
	if err != nil {
		return session.Session{}, err
	}
	sess.User = user
	if err := s.persist(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func (s *Store) save(ctx context.Context, token string, user session.Admin) (session.Session, error) {
	now := s.now().UTC()
	sess := session.Session{Token: token, User: user, CreatedAt: now, ExpiresAt: now.Add(s.TTL)}
	if exp, ok := tokenExpiry(token); ok && exp.Before(sess.ExpiresAt) {
		sess.ExpiresAt = exp.UTC()
	}
	if err := s.persist(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func (s *Store) persist(ctx context.Context, sess session.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return ErrNoSession
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Cache.Set(ctx, key(sess.Token), string(b), ttl)
}

func (s *Store) load(ctx context.Context, token string) (session.Session, bool) {
	raw, err := s.Cache.Get(ctx, key(token))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("session: cache read: %v", err)
		}
		return session.Session{}, false
	}
	var sess session.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return session.Session{}, false
	}
	return sess, true
}

func (s *Store) forget(ctx context.Context, token string) {
	if _, err := s.Cache.Del(ctx, key(token)); err != nil {
		log.Printf("session: cache delete: %v", err)
	}
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}

// tokenExpiry reads the exp claim without verifying the signature.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
