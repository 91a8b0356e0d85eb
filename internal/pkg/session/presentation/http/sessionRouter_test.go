package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/adapter"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/controller"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/presentation/middleware"
)

type stubAuth struct {
	user session.Admin
	err  error
}

func (s stubAuth) Login(context.Context, string, string) (string, session.Admin, error) {
	return "tok-1", s.user, s.err
}

func (s stubAuth) Me(context.Context, string) (session.Admin, error) { return s.user, s.err }

func (s stubAuth) UpdateProfile(_ context.Context, _ string, in session.ProfileInput) (session.Admin, error) {
	u := s.user
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	return u, s.err
}

func newEngine(auth stubAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := usecase.NewStore(auth, adapter.NewMemoryCache(), time.Hour)
	cookie := controller.Cookie{Name: "auth-token"}

	r := gin.New()
	r.Use(middleware.RouteGuard(middleware.Guard{
		CookieName: cookie.Name,
		PublicOnly: []string{"/api/v1/auth/login"},
		Public:     []string{"/healthz", "/api/v1/auth/logout"},
	}))
	RegisterRoutes(r.Group("/api/v1"), store, cookie)
	r.GET("/api/v1/whoami", middleware.RequireSession(store, cookie.Name), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"token": graphql.TokenFrom(c.Request.Context()),
			"actor": mutation.ActorFrom(c.Request.Context()),
		})
	})
	return r
}

func do(r *gin.Engine, method, path, body, cookie string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth-token", Value: cookie})
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var ops = session.Admin{ID: "a1", Email: "ops@glubon.com", Role: session.RoleAdmin}

func TestLoginSetsCookieAndContext(t *testing.T) {
	r := newEngine(stubAuth{user: ops})

	w := do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"ops@glubon.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth-token=tok-1")

	w = do(r, http.MethodGet, "/api/v1/whoami", "", "tok-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"tok-1","actor":"a1"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/auth/me", "", "tok-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ops@glubon.com")
}

func TestGuardRedirects(t *testing.T) {
	r := newEngine(stubAuth{user: ops})

	w := do(r, http.MethodGet, "/api/v1/whoami", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `/login?next=%2Fapi%2Fv1%2Fwhoami`)

	w = do(r, http.MethodGet, "/api/v1/users", "", "", "Accept", "text/html")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login"))

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{}`, "tok-1")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/"`)
}

func TestBackendAuthErrorClearsCookie(t *testing.T) {
	r := newEngine(stubAuth{err: failure.New(failure.KindAuth, "Unauthorized")})

	w := do(r, http.MethodGet, "/api/v1/whoami", "", "stale")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth-token=;")
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestNonAdminCannotLogin(t *testing.T) {
	renter := ops
	renter.Role = "RENTER"
	r := newEngine(stubAuth{user: renter})

	w := do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"ops@glubon.com","password":"pw"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Admin privileges required")
}

func TestLogoutAndProfileUpdate(t *testing.T) {
	r := newEngine(stubAuth{user: ops})
	do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"ops@glubon.com","password":"pw"}`, "")

	w := do(r, http.MethodPatch, "/api/v1/auth/me", `{"lastName":"Team"}`, "tok-1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"lastName":"Team"`)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", "", "tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth-token=;")
}
