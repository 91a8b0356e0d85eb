package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	session "github.com/Chizihn/glubon-admin/internal/pkg/session/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/session/application/usecase"
)

const (
	sessionKey = "session.current"
	HomePath   = "/"
)

// Guard decides, from the cookie alone, whether a path may be visited.
type Guard struct {
	CookieName string
	// PublicOnly paths (the login page) send signed-in admins home.
	PublicOnly []string
	// Public paths are reachable either way, e.g. health checks.
	Public []string
}

// RouteGuard redirects visitors without a cookie away from protected paths and signed-in
// admins away from public-only ones. Browsers get a redirect; API clients get JSON.
func RouteGuard(g Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if matches(path, g.Public) {
			c.Next()
			return
		}
		hasCookie := Token(c, g.CookieName) != ""
		publicOnly := matches(path, g.PublicOnly)

		switch {
		case publicOnly && hasCookie:
			redirect(c, HomePath, http.StatusConflict, "already signed in")
		case !publicOnly && !hasCookie:
			redirect(c, respond.LoginPath+"?next="+url.QueryEscape(path), http.StatusUnauthorized, "Authentication required")
		default:
			c.Next()
		}
	}
}

// RequireSession loads the admin's session and tags the request context with the bearer
// token and actor used by every downstream call.
func RequireSession(store *usecase.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond.SetAdmin(c, "", cookieName)
		sess, err := store.Initialize(c.Request.Context(), Token(c, cookieName))
		if err != nil {
			respond.Failure(c, err)
			return
		}
		ctx := graphql.WithToken(c.Request.Context(), sess.Token)
		ctx = mutation.WithActor(ctx, sess.User.ID)
		c.Request = c.Request.WithContext(ctx)
		respond.SetAdmin(c, sess.User.ID, cookieName)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Current returns the session loaded by RequireSession.
func Current(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// Token reads the session token: the cookie first, then a bearer header.
func Token(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func redirect(c *gin.Context, to string, apiStatus int, msg string) {
	if c.Request.Method == http.MethodGet && strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, to)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(apiStatus, gin.H{"error": msg, "redirect": to})
}

func matches(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}
