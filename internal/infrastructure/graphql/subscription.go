package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
)

const subProtocol = "graphql-transport-ws"

// wsMessage is one frame of the graphql-transport-ws protocol.
type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type subscribePayload struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type nextPayload struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Subscriber opens one socket per subscription against the API's websocket endpoint.
type Subscriber struct {
	url          string
	dialer       *websocket.Dialer
	serviceToken string
	ackTimeout   time.Duration
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// WithSubscriberToken sets the fallback token for connection_init.
func WithSubscriberToken(token string) SubscriberOption {
	return func(s *Subscriber) { s.serviceToken = token }
}

// WithAckTimeout bounds the wait for connection_ack.
func WithAckTimeout(d time.Duration) SubscriberOption {
	return func(s *Subscriber) { s.ackTimeout = d }
}

// WSURL derives the websocket endpoint from the HTTP one.
func WSURL(httpURL string) string {
	switch {
	case strings.HasPrefix(httpURL, "https://"):
		return "wss://" + strings.TrimPrefix(httpURL, "https://")
	case strings.HasPrefix(httpURL, "http://"):
		return "ws://" + strings.TrimPrefix(httpURL, "http://")
	}
	return httpURL
}

func NewSubscriber(url string, opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			Subprotocols:     []string{subProtocol},
		},
		ackTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Subscribe blocks delivering each data payload to handle until ctx is done, the server
// completes the stream, or handle returns an error.
func (s *Subscriber) Subscribe(ctx context.Context, op Operation, vars Vars, handle func(json.RawMessage) error) error {
	if op.Kind != KindSubscription {
		return fmt.Errorf("graphql: %s is not a subscription", op.Name)
	}
	conn, _, err := s.dialer.DialContext(ctx, s.url, http.Header{})
	if err != nil {
		return Classify(err)
	}
	defer conn.Close()

	var writeMu sync.Mutex
	write := func(m wsMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		return conn.WriteJSON(m)
	}

	// unblock ReadJSON when the caller goes away
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = write(wsMessage{ID: "1", Type: "complete"})
			_ = conn.Close()
		case <-stop:
		}
	}()

	token := TokenFrom(ctx)
	if token == "" {
		token = s.serviceToken
	}
	initPayload := map[string]string{}
	if token != "" {
		initPayload["Authorization"] = "Bearer " + token
	}
	raw, _ := json.Marshal(initPayload)
	if err := write(wsMessage{Type: "connection_init", Payload: raw}); err != nil {
		return s.exitErr(ctx, err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(s.ackTimeout))
	var ack wsMessage
	if err := conn.ReadJSON(&ack); err != nil {
		return s.exitErr(ctx, err)
	}
	if ack.Type != "connection_ack" {
		return failure.New(failure.KindAuth, "subscription rejected: "+ack.Type)
	}
	_ = conn.SetReadDeadline(time.Time{})

	sub, _ := json.Marshal(subscribePayload{Query: op.Document, Variables: vars.compact()})
	if err := write(wsMessage{ID: "1", Type: "subscribe", Payload: sub}); err != nil {
		return s.exitErr(ctx, err)
	}

	for {
		var m wsMessage
		if err := conn.ReadJSON(&m); err != nil {
			return s.exitErr(ctx, err)
		}
		switch m.Type {
		case "next":
			var p nextPayload
			if err := json.Unmarshal(m.Payload, &p); err != nil {
				return failure.Wrap(failure.KindNetwork, "malformed subscription payload", err)
			}
			if len(p.Errors) > 0 {
				return messageError(p.Errors[0].Message, errors.New(p.Errors[0].Message))
			}
			if err := handle(p.Data); err != nil {
				return err
			}
		case "error":
			var errs []struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(m.Payload, &errs)
			msg := "subscription error"
			if len(errs) > 0 {
				msg = errs[0].Message
			}
			return messageError(msg, errors.New(msg))
		case "complete":
			return nil
		case "ping":
			if err := write(wsMessage{Type: "pong"}); err != nil {
				return s.exitErr(ctx, err)
			}
		}
	}
}

func (s *Subscriber) exitErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return Classify(err)
}
