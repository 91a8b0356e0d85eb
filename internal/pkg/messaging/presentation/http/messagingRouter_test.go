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
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
)

func setup(t *testing.T) (*dashtest.API, *dashtest.Env, http.Handler) {
	api := dashtest.NewAPI(t).
		On("getConversations", func(map[string]any) (any, string) {
			return map[string]any{
				"items": []map[string]any{{
					"id": "c1", "updatedAt": "2024-05-01T10:00:00Z",
					"participants": []map[string]any{{"firstName": "Ada", "lastName": "Obi"}, {"email": "b@glubon.com"}},
					"lastMessage":  map[string]any{"content": "Is it available?", "createdAt": "2024-05-01T10:00:00Z"},
				}},
				"totalCount": 1, "currentPage": 1,
			}, ""
		}).
		On("getMessages", func(vars map[string]any) (any, string) {
			return map[string]any{
				"items":      []map[string]any{{"id": "m1", "content": "Is it available?"}},
				"totalCount": 1, "currentPage": vars["page"],
			}, ""
		}).
		On("sendMessage", func(vars map[string]any) (any, string) {
			in := vars["input"].(map[string]any)
			return map[string]any{
				"id": "m2", "conversationId": in["conversationId"], "content": in["content"],
				"createdAt": time.Now().UTC().Format(time.RFC3339Nano), "sender": map[string]any{"id": "admin-1"},
			}, ""
		}).
		On("sendBroadcastMessage", func(map[string]any) (any, string) {
			return map[string]any{"success": true, "message": "Sent to 12 users"}, ""
		})
	env := dashtest.NewEnv()
	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, api.Client(graphql.WithCache(adapter.NewMemoryCache(), time.Minute)), env.Env, Options{ShadowTTL: time.Minute})
	return api, env, r
}

func conversations(t *testing.T, r http.Handler) screen.ListResponse[messaging.Conversation] {
	w := dashtest.Do(r, http.MethodGet, "/api/v1/conversations", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body screen.ListResponse[messaging.Conversation]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSendMessagePatchesPreviewWithoutRefetch(t *testing.T) {
	api, _, r := setup(t)

	before := conversations(t, r)
	assert.Equal(t, "Ada Obi, b@glubon.com", before.View.Rows[0].Cells[0].Text)
	assert.Equal(t, "Is it available?", before.View.Rows[0].Cells[2].Text)

	w := dashtest.Do(r, http.MethodPost, "/api/v1/conversations/c1/messages", `{"content":"  Yes, still available "}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, map[string]any{"input": map[string]any{"conversationId": "c1", "content": "Yes, still available", "messageType": "TEXT"}},
		api.Calls("sendMessage")[0].Variables)

	after := conversations(t, r)
	assert.Equal(t, "Yes, still available", after.View.Rows[0].Cells[2].Text)
	assert.Len(t, api.Calls("getConversations"), 1, "the list is served from cache with the shadow applied")
}

func TestEmptyMessageIsRejected(t *testing.T) {
	api, _, r := setup(t)

	w := dashtest.Do(r, http.MethodPost, "/api/v1/conversations/c1/messages", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, api.Calls("sendMessage"))
}

func TestGetMessages(t *testing.T) {
	api, _, r := setup(t)

	w := dashtest.Do(r, http.MethodGet, "/api/v1/conversations/c1/messages?page=2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	vars := api.Calls("getMessages")[0].Variables
	assert.Equal(t, "c1", vars["conversationId"])
	assert.EqualValues(t, 2, vars["page"])
}

func TestBroadcast(t *testing.T) {
	api, env, r := setup(t)

	w := dashtest.Do(r, http.MethodPost, "/api/v1/broadcasts", `{"content":"Maintenance","recipientRoles":["lister","renter"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	in := api.Calls("sendBroadcastMessage")[0].Variables["input"].(map[string]any)
	assert.Equal(t, []any{"LISTER", "RENTER"}, in["recipientRoles"])
	assert.NotContains(t, in, "recipientIds")
	assert.Equal(t, "Broadcast sent successfully", env.Toasts.Last().Message)
}

func TestBroadcastRejections(t *testing.T) {
	api, _, r := setup(t)
	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)

	for name, body := range map[string]string{
		"no recipients":  `{"content":"x"}`,
		"both selectors": `{"content":"x","recipientRoles":["ADMIN"],"recipientIds":["u1"]}`,
		"unknown role":   `{"content":"x","recipientRoles":["GUEST"]}`,
		"no content":     `{"content":"","recipientIds":["u1"]}`,
		"no queue wired": `{"content":"x","recipientIds":["u1"],"sendAt":"` + future + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := dashtest.Do(r, http.MethodPost, "/api/v1/broadcasts", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	assert.Empty(t, api.Calls("sendBroadcastMessage"))
}
