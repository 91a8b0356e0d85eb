// Package dashtest holds fakes shared by the screen contexts' tests.
package dashtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
)

// Call is one request the fake API received.
type Call struct {
	Field     string
	Variables map[string]any
	Token     string
}

// Resolver answers one root field. Returning a non-empty errMsg produces a GraphQL error.
type Resolver func(vars map[string]any) (data any, errMsg string)

// API is a fake GraphQL endpoint dispatching on the root field of each document.
type API struct {
	Server *httptest.Server

	mu        sync.Mutex
	resolvers map[string]Resolver
	calls     []Call
}

func NewAPI(t *testing.T) *API {
	t.Helper()
	a := &API{resolvers: make(map[string]Resolver)}
	a.Server = httptest.NewServer(http.HandlerFunc(a.serve))
	t.Cleanup(a.Server.Close)
	return a
}

// On registers the resolver for field.
func (a *API) On(field string, r Resolver) *API {
	a.mu.Lock()
	a.resolvers[field] = r
	a.mu.Unlock()
	return a
}

// Client returns a graphql client pointed at the fake.
func (a *API) Client(opts ...graphql.Option) *graphql.Client {
	return graphql.NewClient(a.Server.URL, opts...)
}

// Calls returns the requests made for field, or all requests when field is empty.
func (a *API) Calls(field string) []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []Call
	for _, c := range a.calls {
		if field == "" || c.Field == field {
			out = append(out, c)
		}
	}
	return out
}

func (a *API) serve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	field := a.match(body.Query)
	a.calls = append(a.calls, Call{Field: field, Variables: body.Variables, Token: strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")})
	resolve := a.resolvers[field]
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if resolve == nil {
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": []map[string]string{{"message": "no resolver for " + field}}})
		return
	}
	data, errMsg := resolve(body.Variables)
	if errMsg != "" {
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": []map[string]string{{"message": errMsg}}})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{field: data}})
}

// match picks the registered field the document selects at its root.
func (a *API) match(query string) string {
	names := make([]string, 0, len(a.resolvers))
	for n := range a.resolvers {
		names = append(names, n)
	}
	// longest first so getUser does not shadow getUserById
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	for _, n := range names {
		if regexp.MustCompile(`\b` + regexp.QuoteMeta(n) + `\s*[({]`).MatchString(query) {
			return n
		}
	}
	return ""
}

// Toasts collects notified toasts.
type Toasts struct {
	mu   sync.Mutex
	List []mutation.Toast
}

func (t *Toasts) Notify(_ context.Context, toast mutation.Toast) {
	t.mu.Lock()
	t.List = append(t.List, toast)
	t.mu.Unlock()
}

// Last returns the most recent toast.
func (t *Toasts) Last() mutation.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.List) == 0 {
		return mutation.Toast{}
	}
	return t.List[len(t.List)-1]
}

// Refreshes counts refetches per screen for any admin.
type Refreshes struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *Refreshes) For(_ string, name string) mutation.Refresher {
	return mutation.RefreshFunc(func(context.Context) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.counts == nil {
			r.counts = make(map[string]int)
		}
		r.counts[name]++
		return nil
	})
}

func (r *Refreshes) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// Env bundles a screen.Env wired to the collectors.
type Env struct {
	screen.Env
	Toasts    *Toasts
	Refreshes *Refreshes
}

func NewEnv() *Env {
	toasts, refreshes := &Toasts{}, &Refreshes{}
	return &Env{
		Env: screen.Env{
			Runner:     mutation.NewRunner(toasts, nil),
			Refreshers: refreshes,
			Registry:   screen.NewRegistry(),
			PageSize:   20,
		},
		Toasts:    toasts,
		Refreshes: refreshes,
	}
}

// Engine builds a test gin engine that signs every request in as adminID.
func Engine(adminID, token string) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1", func(c *gin.Context) {
		ctx := graphql.WithToken(c.Request.Context(), token)
		ctx = mutation.WithActor(ctx, adminID)
		c.Request = c.Request.WithContext(ctx)
		respond.SetAdmin(c, adminID, "auth-token")
		c.Next()
	})
	return r, g
}

// Do performs a request with a JSON body.
func Do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
