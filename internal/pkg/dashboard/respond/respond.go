package respond

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

// MaxLimit caps the page size a client may ask for.
const MaxLimit = 100

// LoginPath is where an expired session is sent.
const LoginPath = "/login"

const (
	adminKey  = "dashboard.admin"
	cookieKey = "dashboard.cookie"
)

// SetAdmin records the authenticated admin id and the session cookie name on c.
func SetAdmin(c *gin.Context, adminID, cookieName string) {
	c.Set(adminKey, adminID)
	c.Set(cookieKey, cookieName)
}

// Admin returns the admin id stored by SetAdmin.
func Admin(c *gin.Context) string {
	return c.GetString(adminKey)
}

// ListParams reads page, limit, sort and the accepted filter keys from the query string.
// Empty filter values are dropped; "true"/"false" become booleans.
func ListParams(c *gin.Context, filterKeys []string, defaultLimit int) paging.Params {
	p := paging.Params{Page: atoi(c.Query("page"), 1), Limit: atoi(c.Query("limit"), defaultLimit)}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.Filters = filter.Filters{}
	for _, k := range filterKeys {
		v := strings.TrimSpace(c.Query(k))
		if v == "" {
			continue
		}
		p.Filters[k] = FilterValue(v)
	}
	if s := strings.TrimSpace(c.Query("sort")); s != "" {
		p.Sort = ParseSort(s)
	}
	return p.Normalized()
}

// FilterValue converts a raw query value the way list filters expect it.
func FilterValue(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}

// ParseSort reads "field" or "-field" (descending).
func ParseSort(s string) *paging.Sort {
	if strings.HasPrefix(s, "-") {
		return &paging.Sort{Field: strings.TrimPrefix(s, "-"), Desc: true}
	}
	return &paging.Sort{Field: s}
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Status maps a failure kind onto an HTTP status.
func Status(err error) int {
	switch failure.KindOf(err) {
	case failure.KindValidation:
		return http.StatusBadRequest
	case failure.KindBusiness:
		return http.StatusUnprocessableEntity
	case failure.KindConflict:
		return http.StatusConflict
	case failure.KindNotFound:
		return http.StatusNotFound
	case failure.KindAuth:
		return http.StatusUnauthorized
	case "":
		return http.StatusOK
	}
	return http.StatusBadGateway
}

// Failure writes err as JSON. Auth failures clear the session cookie and tell the
// browser to go to the login page.
func Failure(c *gin.Context, err error) {
	fe := failure.As(err)
	body := gin.H{"error": fe.Message, "kind": fe.Kind}
	if errors.Is(err, failure.Auth) {
		ClearCookie(c)
		body["redirect"] = LoginPath
	}
	c.AbortWithStatusJSON(Status(err), body)
}

// ClearCookie expires the session cookie.
func ClearCookie(c *gin.Context) {
	name := c.GetString(cookieKey)
	if name == "" {
		name = "auth-token"
	}
	c.SetCookie(name, "", -1, "/", "", false, true)
}

// Outcome writes the result of a mutation: 200 with the toast on success, the failure's
// status with the error toast otherwise.
func Outcome(c *gin.Context, out mutation.Outcome) {
	if out.OK() {
		c.JSON(http.StatusOK, out)
		return
	}
	body := gin.H{
		"toast":      out.Toast,
		"dispatched": out.Dispatched,
		"kind":       failure.KindOf(out.Err),
		"error":      out.Toast.Message,
	}
	if errors.Is(out.Err, failure.Auth) {
		ClearCookie(c)
		body["redirect"] = LoginPath
	}
	c.JSON(Status(out.Err), body)
}

// BindJSON decodes the body into v, reporting a validation failure on error.
func BindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		Failure(c, failure.Invalid("invalid request body: %v", err))
		return false
	}
	return true
}
