package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/dashtest"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	ticket "github.com/Chizihn/glubon-admin/internal/pkg/ticket/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/ticket/presentation/controller"
)

func setup(t *testing.T) (*dashtest.API, *dashtest.Env, http.Handler) {
	statuses := map[string]string{"T1": "OPEN", "T2": "RESOLVED"}
	api := dashtest.NewAPI(t).
		On("getAllTickets", func(map[string]any) (any, string) {
			return map[string]any{
				"items": []map[string]any{
					{"id": "T1", "subject": "Refund", "status": "OPEN", "priority": "HIGH", "createdBy": map[string]any{"email": "a@b.co"}},
					{"id": "T2", "subject": "Login", "status": "RESOLVED", "priority": "LOW"},
				},
				"totalCount": 2, "currentPage": 1,
			}, ""
		}).
		On("getTicketById", func(vars map[string]any) (any, string) {
			id, _ := vars["ticketId"].(string)
			status, ok := statuses[id]
			if !ok {
				return nil, ""
			}
			return map[string]any{"id": id, "subject": "Refund", "status": status, "attachments": []string{"receipt.png"}}, ""
		}).
		On("updateTicketStatus", func(map[string]any) (any, string) {
			return map[string]any{"success": true}, ""
		})
	env := dashtest.NewEnv()
	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, api.Client(), env.Env)
	return api, env, r
}

func TestResolveFromReview(t *testing.T) {
	api, env, r := setup(t)

	w := dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T1/review", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var opened screen.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	assert.Equal(t, []string{"receipt.png"}, opened.Review.Record.Documents)

	w = dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T1/review/approve", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	calls := api.Calls("updateTicketStatus")
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"ticketId": "T1", "status": "RESOLVED"}, calls[0].Variables)
	assert.Equal(t, "Ticket resolved successfully", env.Toasts.Last().Message)
	assert.Equal(t, 1, env.Refreshes.Count(controller.ScreenName))
}

func TestCloseNeedsResolution(t *testing.T) {
	api, _, r := setup(t)

	dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T1/review", "")
	w := dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T1/review/reject", `{"reason":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T1/review/reject", `{"reason":"Duplicate"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	calls := api.Calls("updateTicketStatus")
	require.Len(t, calls, 1)
	assert.Equal(t, "CLOSED", calls[0].Variables["status"])
	assert.Equal(t, "Duplicate", calls[0].Variables["resolution"])
}

func TestResolvedTicketCannotBeReviewed(t *testing.T) {
	_, _, r := setup(t)

	w := dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T2/review", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = dashtest.Do(r, http.MethodPost, "/api/v1/tickets/T9/review", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchStatus(t *testing.T) {
	api, env, r := setup(t)

	w := dashtest.Do(r, http.MethodPatch, "/api/v1/tickets/T1/status", `{"status":"in_progress"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "IN_PROGRESS", api.Calls("updateTicketStatus")[0].Variables["status"])
	assert.Equal(t, "Ticket marked in progress", env.Toasts.Last().Message)

	w = dashtest.Do(r, http.MethodPatch, "/api/v1/tickets/T1/status", `{"status":"PARKED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActions(t *testing.T) {
	_, _, r := setup(t)

	w := dashtest.Do(r, http.MethodGet, "/api/v1/tickets", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body screen.ListResponse[ticket.Ticket]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.View.Rows, 2)
	assert.Equal(t, "a@b.co", body.View.Rows[0].Cells[1].Text)
	assert.False(t, body.View.Rows[0].Actions[0].Disabled)
	assert.True(t, body.View.Rows[1].Actions[0].Disabled)
	assert.False(t, body.View.Rows[1].Actions[2].Disabled)
}
