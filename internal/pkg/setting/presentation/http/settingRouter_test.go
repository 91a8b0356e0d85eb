package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/dashtest"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	setting "github.com/Chizihn/glubon-admin/internal/pkg/setting/application/domain"
)

func setup(t *testing.T) (*dashtest.API, *dashtest.Env, http.Handler) {
	all := make([]map[string]any, 0, 25)
	for i := 1; i <= 25; i++ {
		category := "general"
		if i%5 == 0 {
			category = "payments"
		}
		all = append(all, map[string]any{"key": fmt.Sprintf("key_%02d", i), "value": i, "category": category})
	}
	api := dashtest.NewAPI(t).
		On("getPlatformSettings", func(map[string]any) (any, string) { return all, "" }).
		On("updatePlatformSetting", func(map[string]any) (any, string) {
			return map[string]any{"success": true}, ""
		})
	env := dashtest.NewEnv()
	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, api.Client(), env.Env)
	return api, env, r
}

func list(t *testing.T, r http.Handler, query string) screen.ListResponse[setting.Setting] {
	t.Helper()
	w := dashtest.Do(r, http.MethodGet, "/api/v1/settings"+query, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body screen.ListResponse[setting.Setting]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSettingsArePagedLocally(t *testing.T) {
	_, _, r := setup(t)

	body := list(t, r, "?page=2")
	assert.Len(t, body.Page.Items, 5)
	assert.Equal(t, 25, body.Page.TotalCount)
	assert.Equal(t, 2, body.Page.TotalPages)
	assert.False(t, body.Page.HasNextPage)
	assert.Equal(t, "key_21", body.Page.Items[0].Key)
	assert.Equal(t, "21", body.View.Rows[0].Cells[1].Text)
}

func TestHugePageIsEmpty(t *testing.T) {
	_, _, r := setup(t)

	body := list(t, r, "?page=922337203685477580")
	assert.Empty(t, body.Page.Items)
	assert.Equal(t, 25, body.Page.TotalCount)
	assert.False(t, body.Page.HasNextPage)
}

func TestCategoryFilter(t *testing.T) {
	_, _, r := setup(t)

	body := list(t, r, "?category=payments")
	assert.Equal(t, 5, body.Page.TotalCount)
	for _, s := range body.Page.Items {
		assert.Equal(t, "payments", s.Category)
	}
}

func TestUpdateSetting(t *testing.T) {
	api, env, r := setup(t)

	w := dashtest.Do(r, http.MethodPut, "/api/v1/settings/maintenance_mode", `{"value":true,"description":"Site offline"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	calls := api.Calls("updatePlatformSetting")
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"input": map[string]any{
		"key": "maintenance_mode", "value": true, "description": "Site offline",
	}}, calls[0].Variables)
	assert.Equal(t, "Setting updated successfully", env.Toasts.Last().Message)
}

func TestBlankValueIsRejected(t *testing.T) {
	api, _, r := setup(t)

	for _, body := range []string{`{}`, `{"value":"  "}`} {
		w := dashtest.Do(r, http.MethodPut, "/api/v1/settings/site_name", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, api.Calls("updatePlatformSetting"))
}
