package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analytics "github.com/Chizihn/glubon-admin/internal/pkg/analytics/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/dashtest"
)

func setup(t *testing.T) (*dashtest.API, http.Handler) {
	api := dashtest.NewAPI(t).
		On("getAdminDashboardStats", func(map[string]any) (any, string) {
			return map[string]any{
				"users":         map[string]any{"total": 45, "active": 40},
				"verifications": map[string]any{"pending": 3},
			}, ""
		}).
		On("getAnalyticsSeries", func(map[string]any) (any, string) {
			return []map[string]any{{"date": "2024-03-02", "value": 4}}, ""
		})
	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, api.Client())
	return api, r
}

func TestOverview(t *testing.T) {
	_, r := setup(t)

	w := dashtest.Do(r, http.MethodGet, "/api/v1/analytics/overview", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct{ Overview analytics.Overview }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 45, body.Overview.Users.Total)
	assert.Equal(t, 3, body.Overview.Verifications.Pending)
}

func TestSeries(t *testing.T) {
	api, r := setup(t)

	w := dashtest.Do(r, http.MethodGet, "/api/v1/analytics/series?from=2024-03-01&to=2024-03-03&metric=bookings", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct{ Series analytics.Series }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Series.Points, 3)
	assert.Equal(t, float64(4), body.Series.Total)

	calls := api.Calls("getAnalyticsSeries")
	require.Len(t, calls, 1)
	assert.Equal(t, "BOOKINGS", calls[0].Variables["metric"])
	assert.Equal(t, map[string]any{"startDate": "2024-03-01", "endDate": "2024-03-03"}, calls[0].Variables["dateRange"])
}

func TestSeriesRejectsBadRange(t *testing.T) {
	api, r := setup(t)

	for _, q := range []string{"?from=2024-03-05&to=2024-03-01", "?from=2020-01-01&to=2024-01-01", "?from=yesterday"} {
		w := dashtest.Do(r, http.MethodGet, "/api/v1/analytics/series"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
	assert.Empty(t, api.Calls("getAnalyticsSeries"))
}
