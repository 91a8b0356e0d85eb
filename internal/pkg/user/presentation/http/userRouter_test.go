package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/dashtest"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	user "github.com/Chizihn/glubon-admin/internal/pkg/user/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/user/presentation/controller"
)

func usersPage(vars map[string]any) (any, string) {
	filters, _ := vars["filters"].(map[string]any)
	page := int(filters["page"].(float64))
	limit := int(filters["limit"].(float64))
	var items []map[string]any
	for i := (page - 1) * limit; i < min(page*limit, 45); i++ {
		items = append(items, map[string]any{
			"id": fmt.Sprintf("u%d", i+1), "email": fmt.Sprintf("u%d@glubon.com", i+1),
			"firstName": "Ada", "lastName": fmt.Sprint(i + 1),
			"role": "RENTER", "status": "ACTIVE", "isVerified": i%2 == 0,
			"createdAt": "2024-03-01T10:00:00Z",
		})
	}
	return map[string]any{"items": items, "totalCount": 45, "totalPages": 3, "currentPage": page}, ""
}

func setup(t *testing.T) (*dashtest.API, *dashtest.Env, http.Handler) {
	api := dashtest.NewAPI(t).On("getAllUsers", usersPage)
	env := dashtest.NewEnv()
	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, api.Client(), env.Env)
	return api, env, r
}

func TestListUsersLastPage(t *testing.T) {
	api, env, r := setup(t)

	w := dashtest.Do(r, http.MethodGet, "/api/v1/users?page=3&status=ACTIVE", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body screen.ListResponse[user.User]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Page.Items, 5)
	assert.False(t, body.Page.HasNextPage)
	assert.True(t, body.Page.HasPreviousPage)
	assert.Equal(t, "Page 3 of 3", body.View.Footer.Label)
	assert.False(t, body.View.Footer.NextEnabled)
	assert.Equal(t, "Ada 41", body.View.Rows[0].Cells[0].Text)
	assert.Equal(t, "Mar 1, 2024", body.View.Rows[0].Cells[5].Text)

	calls := api.Calls("getAllUsers")
	require.Len(t, calls, 1)
	filters := calls[0].Variables["filters"].(map[string]any)
	assert.Equal(t, "ACTIVE", filters["status"])
	assert.Equal(t, "tok", calls[0].Token)

	_, err := env.Registry.Get(controller.ScreenName)
	assert.NoError(t, err)
}

func TestSuspendUser(t *testing.T) {
	api, env, r := setup(t)
	api.On("updateUserStatus", func(map[string]any) (any, string) {
		return map[string]any{"success": true, "message": "done"}, ""
	})

	w := dashtest.Do(r, http.MethodPatch, "/api/v1/users/u7/status", `{"status":"suspended"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out mutation.Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Refreshed)
	assert.Equal(t, "User suspended successfully", out.Toast.Message)

	calls := api.Calls("updateUserStatus")
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"userId": "u7", "status": "SUSPENDED"}, calls[0].Variables)
	assert.Equal(t, mutation.ToastSuccess, env.Toasts.Last().Kind)
	assert.Equal(t, 1, env.Refreshes.Count(controller.ScreenName))
}

func TestSuspendFailureKeepsList(t *testing.T) {
	api, env, r := setup(t)
	api.On("updateUserStatus", func(map[string]any) (any, string) {
		return nil, "Cannot suspend an admin"
	})

	w := dashtest.Do(r, http.MethodPatch, "/api/v1/users/u1/status", `{"status":"SUSPENDED"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot suspend an admin")
	assert.Equal(t, 0, env.Refreshes.Count(controller.ScreenName))
}

func TestInvalidStatusIsNotDispatched(t *testing.T) {
	api, _, r := setup(t)

	w := dashtest.Do(r, http.MethodPatch, "/api/v1/users/u1/status", `{"status":"DELETED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, api.Calls("updateUserStatus"))
}

func TestGetUserNotFound(t *testing.T) {
	api, _, r := setup(t)
	api.On("getUserById", func(map[string]any) (any, string) { return nil, "" })

	w := dashtest.Do(r, http.MethodGet, "/api/v1/users/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
