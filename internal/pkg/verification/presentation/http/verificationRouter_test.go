package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/cache/adapter"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/dashtest"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/review"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	verification "github.com/Chizihn/glubon-admin/internal/pkg/verification/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/verification/presentation/controller"
)

func setup(t *testing.T, opts ...graphql.Option) (*dashtest.API, *dashtest.Env, http.Handler) {
	api := dashtest.NewAPI(t).
		On("getAllVerifications", func(map[string]any) (any, string) {
			return map[string]any{
				"items": []map[string]any{
					{"id": "V1", "documentType": "NATIONAL_ID", "status": "PENDING", "user": map[string]any{"firstName": "Ada", "lastName": "Obi"}},
					{"id": "V2", "documentType": "PASSPORT", "status": "APPROVED"},
				},
				"totalCount": 2, "currentPage": 1,
			}, ""
		}).
		On("getVerificationById", func(vars map[string]any) (any, string) {
			return map[string]any{
				"id": vars["verificationId"], "documentType": "NATIONAL_ID", "status": "PENDING",
				"documentImages": []string{"front.jpg", "back.jpg"},
				"user":           map[string]any{"firstName": "Ada", "lastName": "Obi"},
			}, ""
		}).
		On("reviewVerification", func(map[string]any) (any, string) {
			return map[string]any{"success": true, "message": "Reviewed"}, ""
		})
	env := dashtest.NewEnv()
	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, api.Client(opts...), env.Env)
	return api, env, r
}

func TestApproveV1(t *testing.T) {
	api, env, r := setup(t)

	w := dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var opened screen.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	assert.Equal(t, review.Viewing, opened.Review.State)
	assert.Equal(t, "Ada Obi · National ID", opened.Review.Record.Title)

	w = dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review/approve", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	calls := api.Calls("reviewVerification")
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"input": map[string]any{"verificationId": "V1", "approved": true}}, calls[0].Variables)

	var out mutation.Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Refreshed)
	assert.Equal(t, "Verification approved successfully", env.Toasts.Last().Message)
	assert.Equal(t, 1, env.Refreshes.Count(controller.ScreenName))

	w = dashtest.Do(r, http.MethodGet, "/api/v1/verifications/V1/review", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "modal is closed after the decision")
}

func TestRejectSendsTrimmedReason(t *testing.T) {
	api, _, r := setup(t)

	dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review", "")
	w := dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review/reject", `{"reason":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, api.Calls("reviewVerification"))

	w = dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review/reject", `{"reason":" Blurry photo "}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	input := api.Calls("reviewVerification")[0].Variables["input"].(map[string]any)
	assert.Equal(t, false, input["approved"])
	assert.Equal(t, "Blurry photo", input["reason"])
}

func TestReviewedRowsCannotBeApproved(t *testing.T) {
	_, _, r := setup(t)

	w := dashtest.Do(r, http.MethodGet, "/api/v1/verifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body screen.ListResponse[verification.Verification]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.View.Rows, 2)
	assert.False(t, body.View.Rows[0].Actions[1].Disabled)
	assert.True(t, body.View.Rows[1].Actions[1].Disabled)
	assert.Equal(t, "Passport", body.View.Rows[1].Cells[1].Text)
}

func TestApprovalInvalidatesCachedList(t *testing.T) {
	api, _, r := setup(t, graphql.WithCache(adapter.NewMemoryCache(), time.Minute))

	dashtest.Do(r, http.MethodGet, "/api/v1/verifications", "")
	dashtest.Do(r, http.MethodGet, "/api/v1/verifications", "")
	assert.Len(t, api.Calls("getAllVerifications"), 1)

	dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review", "")
	dashtest.Do(r, http.MethodPost, "/api/v1/verifications/V1/review/approve", "")
	dashtest.Do(r, http.MethodGet, "/api/v1/verifications", "")
	assert.Len(t, api.Calls("getAllVerifications"), 2)
}
