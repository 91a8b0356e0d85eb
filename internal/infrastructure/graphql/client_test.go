package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/adapter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/filter"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

type recordedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
	Auth      string         `json:"-"`
}

func fakeAPI(t *testing.T, respond func(r recordedRequest) (int, string)) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rr recordedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rr))
		rr.Auth = r.Header.Get("Authorization")
		seen = append(seen, rr)
		code, body := respond(rr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

var (
	listUsers = Query("getAllUsers", "users", `query($filters: AdminUserFilters){ getAllUsers(filters:$filters){ totalCount } }`)
	suspend   = Mutation("updateUserStatus", "users", `mutation($userId: ID!, $status: UserStatus!){ updateUserStatus(userId:$userId, status:$status) }`)
	review    = Mutation("reviewVerification", "verifications", `mutation($input: ReviewVerificationInput!){ reviewVerification(input:$input) }`)
)

func TestQuerySendsTokenAndVariables(t *testing.T) {
	srv, seen := fakeAPI(t, func(recordedRequest) (int, string) {
		return http.StatusOK, `{"data":{"getAllUsers":{"totalCount":45}}}`
	})
	c := NewClient(srv.URL)

	var out struct {
		GetAllUsers struct {
			TotalCount int `json:"totalCount"`
		} `json:"getAllUsers"`
	}
	ctx := WithToken(context.Background(), "tok")
	require.NoError(t, c.Query(ctx, listUsers, Vars{"filters": map[string]any{"page": 1}}, &out))

	assert.Equal(t, 45, out.GetAllUsers.TotalCount)
	require.Len(t, *seen, 1)
	assert.Equal(t, "Bearer tok", (*seen)[0].Auth)
	assert.Contains(t, (*seen)[0].Variables, "filters")
}

func TestNilVariablesAreOmitted(t *testing.T) {
	srv, seen := fakeAPI(t, func(recordedRequest) (int, string) {
		return http.StatusOK, `{"data":{"reviewVerification":true}}`
	})
	c := NewClient(srv.URL)

	var reason *string
	var out map[string]any
	require.NoError(t, c.Mutate(context.Background(), review, Vars{"id": "V1", "reason": reason}, &out))

	require.Len(t, *seen, 1)
	assert.NotContains(t, (*seen)[0].Variables, "reason")
	assert.Equal(t, "V1", (*seen)[0].Variables["id"])
}

func TestServiceTokenIsTheFallback(t *testing.T) {
	srv, seen := fakeAPI(t, func(recordedRequest) (int, string) {
		return http.StatusOK, `{"data":{}}`
	})
	c := NewClient(srv.URL, WithServiceToken("svc"))

	var out map[string]any
	require.NoError(t, c.Query(context.Background(), listUsers, nil, &out))
	assert.Equal(t, "Bearer svc", (*seen)[0].Auth)
}

func TestErrorsAreClassified(t *testing.T) {
	cases := []struct {
		name string
		code int
		body string
		kind failure.Kind
		msg  string
	}{
		{"business", http.StatusOK, `{"errors":[{"message":"User already suspended"}]}`, failure.KindBusiness, "User already suspended"},
		{"auth message", http.StatusOK, `{"errors":[{"message":"Unauthorized access"}]}`, failure.KindAuth, "Unauthorized access"},
		{"401 status", http.StatusUnauthorized, `denied`, failure.KindAuth, "Unauthorized"},
		{"502 status", http.StatusBadGateway, `<html>`, failure.KindNetwork, "API returned status 502"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := fakeAPI(t, func(recordedRequest) (int, string) { return tc.code, tc.body })
			c := NewClient(srv.URL)

			var out map[string]any
			err := c.Query(context.Background(), listUsers, nil, &out)
			require.Error(t, err)
			fe := failure.As(err)
			assert.Equal(t, tc.kind, fe.Kind)
			assert.Equal(t, tc.msg, fe.Message)
		})
	}
}

func TestUnreachableIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, WithHTTPClient(&http.Client{Timeout: time.Second}))
	var out map[string]any
	err := c.Query(context.Background(), listUsers, nil, &out)
	assert.ErrorIs(t, err, failure.Network)
}

func TestMutationInvalidatesCachedGroup(t *testing.T) {
	var total atomic.Int32
	total.Store(45)
	srv, seen := fakeAPI(t, func(r recordedRequest) (int, string) {
		if r.Query == suspend.Document {
			total.Store(44)
			return http.StatusOK, `{"data":{"updateUserStatus":true}}`
		}
		b, _ := json.Marshal(map[string]any{"data": map[string]any{"getAllUsers": map[string]any{"totalCount": total.Load()}}})
		return http.StatusOK, string(b)
	})
	c := NewClient(srv.URL, WithCache(adapter.NewMemoryCache(), time.Minute))
	ctx := context.Background()

	read := func() int {
		var out struct {
			GetAllUsers struct {
				TotalCount int `json:"totalCount"`
			} `json:"getAllUsers"`
		}
		require.NoError(t, c.Query(ctx, listUsers, Vars{"filters": map[string]any{"page": 1}}, &out))
		return out.GetAllUsers.TotalCount
	}

	assert.Equal(t, 45, read())
	assert.Equal(t, 45, read())
	assert.Len(t, *seen, 1, "second read is served from cache")

	var ok map[string]any
	require.NoError(t, c.Mutate(ctx, suspend, Vars{"userId": "u1", "status": "SUSPENDED"}, &ok))

	assert.Equal(t, 44, read())
	assert.Len(t, *seen, 3)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	srv, seen := fakeAPI(t, func(r recordedRequest) (int, string) {
		if r.Query == suspend.Document {
			return http.StatusOK, `{"errors":[{"message":"nope"}]}`
		}
		return http.StatusOK, `{"data":{"getAllUsers":{"totalCount":45}}}`
	})
	c := NewClient(srv.URL, WithCache(adapter.NewMemoryCache(), time.Minute))
	ctx := context.Background()

	var out map[string]any
	require.NoError(t, c.Query(ctx, listUsers, nil, &out))
	require.Error(t, c.Mutate(ctx, suspend, Vars{"userId": "u1"}, &out))
	require.NoError(t, c.Query(ctx, listUsers, nil, &out))

	assert.Len(t, *seen, 2)
}

func TestPatchAndShadow(t *testing.T) {
	c := NewClient("http://unused", WithCache(adapter.NewMemoryCache(), time.Minute))
	ctx := context.Background()

	var got map[string]string
	assert.False(t, c.Shadow(ctx, "conversation:c1", &got))

	require.NoError(t, c.Patch(ctx, "conversation:c1", map[string]string{"lastMessage": "hi"}, time.Minute))
	require.True(t, c.Shadow(ctx, "conversation:c1", &got))
	assert.Equal(t, "hi", got["lastMessage"])
}

func TestWrongKindIsRejected(t *testing.T) {
	c := NewClient("http://unused")
	var out map[string]any
	assert.Error(t, c.Query(context.Background(), suspend, nil, &out))
	assert.Error(t, c.Mutate(context.Background(), listUsers, nil, &out))
}

func TestFilterInput(t *testing.T) {
	in := FilterInput(paging.Params{Page: 2, Filters: filter.Filters{"status": "ACTIVE"}, Sort: &paging.Sort{Field: "createdAt", Desc: true}})

	assert.Equal(t, map[string]any{
		"status":    "ACTIVE",
		"page":      2,
		"limit":     paging.DefaultLimit,
		"sortBy":    "createdAt",
		"sortOrder": "desc",
	}, in)
}
