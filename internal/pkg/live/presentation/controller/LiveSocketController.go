package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	"github.com/Chizihn/glubon-admin/internal/infrastructure/realtime"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	live "github.com/Chizihn/glubon-admin/internal/pkg/live/application/domain"
	"github.com/Chizihn/glubon-admin/internal/pkg/live/application/usecase"
)

const defaultReadTimeout = 60 * time.Second

// LiveSocketController serves the dashboard socket: live list views, toasts, unread
// badges and the messages of joined conversations.
type LiveSocketController struct {
	hub      *usecase.Hub
	upgrader websocket.Upgrader
}

// NewLiveSocketController accepts upgrades from origins; an empty list allows any origin.
func NewLiveSocketController(hub *usecase.Hub, origins []string) *LiveSocketController {
	return &LiveSocketController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(origins) == 0 || slices.Contains(origins, origin)
			},
		},
	}
}

// Handle upgrades the request and processes frames until the client disconnects.
func (ctl *LiveSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := respond.Admin(c)
		if adminID == "" {
			respond.Failure(c, failure.New(failure.KindAuth, "Unauthorized"))
			return
		}

		ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			return
		}

		conn := realtime.NewConnection(adminID, ws)
		sess := ctl.hub.Connect(c.Request.Context(), conn, graphql.TokenFrom(c.Request.Context()))
		defer func() {
			ctl.hub.Disconnect(sess)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 16)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				log.Printf("live: read from %s: %v", adminID, err)
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))

			var frame live.Inbound
			if err := json.Unmarshal(data, &frame); err != nil {
				sess.Send(live.NewErrorFrame("bad_request", "invalid payload"))
				continue
			}
			if err := dispatch(sess, frame); err != nil {
				replyError(sess, err)
			}
		}
	}
}

func dispatch(sess *usecase.Session, f live.Inbound) error {
	switch f.Type {
	case "join":
		return sess.Join(f.ConversationID)
	case "leave":
		return sess.Leave(f.ConversationID)
	case "watch":
		return sess.Watch(f.Screen, f.Page, f.Filters)
	case "filter":
		return sess.Filter(f.Screen, f.Key, f.Value)
	case "search":
		return sess.Search(f.Screen, f.Term)
	case "page":
		return sess.Page(f.Screen, f.Page)
	case "refresh":
		return sess.Refresh(f.Screen)
	case "unwatch":
		return sess.Unwatch(f.Screen)
	case "ping":
		sess.Send(live.AckFrame{Type: "pong"})
		return nil
	}
	return errUnsupported
}

var errUnsupported = errors.New("unknown frame type")

func replyError(sess *usecase.Session, err error) {
	if errors.Is(err, errUnsupported) {
		sess.Send(live.NewErrorFrame("unsupported_type", err.Error()))
		return
	}
	fe := failure.As(err)
	code := "bad_request"
	switch fe.Kind {
	case failure.KindNotFound:
		code = "not_found"
	case failure.KindConflict:
		code = "conflict"
	}
	sess.Send(live.NewErrorFrame(code, fe.Message))
}
