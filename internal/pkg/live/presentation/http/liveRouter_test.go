package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/realtime"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/dashtest"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/screen"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/table"
	"github.com/Chizihn/glubon-admin/internal/pkg/live/application/usecase"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/usecase"
	notifUsecase "github.com/Chizihn/glubon-admin/internal/pkg/notification/application/usecase"
	notifRepo "github.com/Chizihn/glubon-admin/internal/pkg/notification/persistence/repository/port"
)

type row struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type watcher struct {
	mu      sync.Mutex
	watched map[string]string
	dropped []string
}

func (w *watcher) Watch(id, token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched == nil {
		w.watched = make(map[string]string)
	}
	w.watched[id] = token
}

func (w *watcher) Unwatch(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropped = append(w.dropped, id)
}

func (w *watcher) droppedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dropped)
}

type fixture struct {
	hub     *usecase.Hub
	router  *realtime.Router
	watcher *watcher
	fetches *atomic.Int32
	ws      *websocket.Conn
	url     string
}

func setup(t *testing.T, opts ...func(*usecase.Hub, *realtime.Router)) *fixture {
	all := make([]row, 45)
	for i := range all {
		all[i] = row{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("Row %d", i+1), Status: "ACTIVE"}
	}
	all[0].Status = "SUSPENDED"
	fetches := &atomic.Int32{}

	registry := screen.NewRegistry()
	screen.Mount(screen.Env{Registry: registry, PageSize: 20, Debounce: 20 * time.Millisecond}, &screen.Screen[row]{
		Name:    "rows",
		Filters: []string{"status"},
		Fetcher: paging.FetchFunc[row](func(_ context.Context, p paging.Params) (paging.Page[row], error) {
			fetches.Add(1)
			items := all
			if s, _ := p.Filters["status"].(string); s != "" {
				items = nil
				for _, r := range all {
					if r.Status == s {
						items = append(items, r)
					}
				}
			}
			return paging.Slice(items, p), nil
		}),
		Table: table.Table[row]{
			Columns:    []table.Column[row]{{Key: "name", Label: "Name"}, {Key: "status", Label: "Status"}},
			Searchable: true,
		},
	})

	rt := realtime.NewRouter()
	w := &watcher{}
	hub := usecase.NewHub(rt, registry, w)
	for _, opt := range opts {
		opt(hub, rt)
	}
	t.Cleanup(hub.Close)

	r, g := dashtest.Engine("admin-1", "tok")
	RegisterRoutes(g, hub, nil)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	f := &fixture{hub: hub, router: rt, watcher: w, fetches: fetches, url: "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live/ws"}
	f.ws = f.dial(t)
	return f
}

// dial opens another socket for the same admin and waits for its connected frame.
func (f *fixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial(f.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	connected := readFrame(t, ws, "connected", nil)
	assert.Equal(t, []any{"rows"}, connected["screens"])
	return ws
}

func (f *fixture) send(t *testing.T, frame map[string]any) {
	t.Helper()
	require.NoError(t, f.ws.WriteJSON(frame))
}

// next reads frames until one of the given type matches pred.
func (f *fixture) next(t *testing.T, typ string, pred func(map[string]any) bool) map[string]any {
	t.Helper()
	return readFrame(t, f.ws, typ, pred)
}

func readFrame(t *testing.T, ws *websocket.Conn, typ string, pred func(map[string]any) bool) map[string]any {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		_, data, err := ws.ReadMessage()
		require.NoError(t, err, "waiting for %s", typ)
		var frame map[string]any
		require.NoError(t, json.Unmarshal(data, &frame))
		if frame["type"] == typ && (pred == nil || pred(frame)) {
			return frame
		}
	}
}

func loaded(frame map[string]any) bool {
	view, _ := frame["view"].(map[string]any)
	return view != nil && view["loading"] == false
}

func footer(frame map[string]any) string {
	return frame["view"].(map[string]any)["footer"].(map[string]any)["label"].(string)
}

func TestWatchAndPage(t *testing.T) {
	f := setup(t)

	f.send(t, map[string]any{"type": "watch", "screen": "rows", "page": 3})
	f.next(t, "list", func(fr map[string]any) bool { return !loaded(fr) })
	frame := f.next(t, "list", loaded)
	assert.Equal(t, "Page 3 of 3", footer(frame))
	assert.Len(t, frame["view"].(map[string]any)["rows"], 5)

	f.send(t, map[string]any{"type": "page", "screen": "rows", "page": 1})
	frame = f.next(t, "list", loaded)
	assert.Equal(t, "Page 1 of 3", footer(frame))
}

func TestMutationRefreshesOpenList(t *testing.T) {
	f := setup(t)
	assert.Nil(t, f.hub.For("admin-1", "rows"))

	f.send(t, map[string]any{"type": "watch", "screen": "rows"})
	f.next(t, "list", loaded)
	before := f.fetches.Load()

	ref := f.hub.For("admin-1", "rows")
	require.NotNil(t, ref)
	require.NoError(t, ref.Refetch(context.Background()))
	f.next(t, "list", loaded)
	assert.Equal(t, before+1, f.fetches.Load())
}

func TestDebouncedFilter(t *testing.T) {
	f := setup(t)

	f.send(t, map[string]any{"type": "watch", "screen": "rows", "page": 2})
	f.next(t, "list", loaded)

	f.send(t, map[string]any{"type": "filter", "screen": "rows", "key": "status", "value": "SUSPENDED"})
	f.next(t, "list", func(fr map[string]any) bool { return fr["debouncing"] == true })
	frame := f.next(t, "list", func(fr map[string]any) bool { return loaded(fr) && fr["debouncing"] == false })
	assert.Equal(t, "Page 1 of 1", footer(frame))
}

func TestToastGoesToActor(t *testing.T) {
	f := setup(t)

	f.hub.Notify(mutation.WithActor(context.Background(), "admin-1"), mutation.Toast{Kind: mutation.ToastSuccess, Message: "User suspended successfully"})
	frame := f.next(t, "toast", nil)
	assert.Equal(t, "User suspended successfully", frame["toast"].(map[string]any)["message"])
}

func TestJoinRelaysConversation(t *testing.T) {
	f := setup(t)

	f.send(t, map[string]any{"type": "join", "conversation_id": "c1"})
	f.next(t, "joined", nil)
	f.watcher.mu.Lock()
	assert.Equal(t, "tok", f.watcher.watched["c1"])
	f.watcher.mu.Unlock()

	assert.Equal(t, 1, f.router.Publish(messaging.Channel("c1"), map[string]any{"type": "message", "conversation_id": "c1"}, ""))
	f.next(t, "message", nil)

	f.send(t, map[string]any{"type": "leave", "conversation_id": "c1"})
	f.next(t, "left", nil)
	assert.Equal(t, 1, f.watcher.droppedCount())
	assert.Equal(t, 0, f.router.Members(messaging.Channel("c1")))
}

func TestBadFrames(t *testing.T) {
	f := setup(t)

	f.send(t, map[string]any{"type": "dance"})
	assert.Equal(t, "unsupported_type", f.next(t, "error", nil)["code"])

	f.send(t, map[string]any{"type": "watch", "screen": "nope"})
	assert.Equal(t, "not_found", f.next(t, "error", nil)["code"])

	f.send(t, map[string]any{"type": "page", "screen": "rows", "page": 2})
	assert.Equal(t, "bad_request", f.next(t, "error", nil)["code"])

	f.send(t, map[string]any{"type": "join"})
	assert.Equal(t, "bad_request", f.next(t, "error", nil)["code"])
}

func TestDisconnectReleasesSession(t *testing.T) {
	f := setup(t)

	f.send(t, map[string]any{"type": "join", "conversation_id": "c1"})
	f.next(t, "joined", nil)
	f.send(t, map[string]any{"type": "watch", "screen": "rows"})
	f.next(t, "list", loaded)
	require.Len(t, f.hub.Recipients(), 1)

	require.NoError(t, f.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))

	assert.Eventually(t, func() bool {
		return f.hub.For("admin-1", "rows") == nil && f.watcher.droppedCount() == 1 && len(f.hub.Recipients()) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

type unreadRepo struct {
	notifRepo.NotificationRepository
	count int
}

func (r unreadRepo) UnreadCount(context.Context) (int, error) { return r.count, nil }

func TestReconnectGetsUnreadCountAgain(t *testing.T) {
	var poller *notifUsecase.UnreadPoller
	f := setup(t, func(h *usecase.Hub, rt *realtime.Router) {
		poller = notifUsecase.NewUnreadPoller(unreadRepo{count: 3}, h, rt, time.Minute, 0)
		h.OnConnect = poller.Forget
	})

	poller.Tick(context.Background())
	assert.Equal(t, float64(3), f.next(t, "unread", nil)["count"])

	again := f.dial(t)
	poller.Tick(context.Background())
	assert.Equal(t, float64(3), readFrame(t, again, "unread", nil)["count"])
}
