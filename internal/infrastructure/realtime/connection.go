package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 64
)

// ErrClosed is returned by Send once the connection is gone.
var ErrClosed = errors.New("realtime: connection closed")

// Conn is the part of a websocket the connection drives; *websocket.Conn satisfies it.
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Connection is one admin's live socket. Writes go through a buffered queue drained by a
// single goroutine; a client too slow to keep up is disconnected.
type Connection struct {
	ID      string
	AdminID string

	ws     Conn
	send   chan []byte
	once   sync.Once
	closed chan struct{}
}

func NewConnection(adminID string, ws Conn) *Connection {
	return &Connection{
		ID:      uuid.NewString(),
		AdminID: adminID,
		ws:      ws,
		send:    make(chan []byte, sendBuffer),
		closed:  make(chan struct{}),
	}
}

// Start launches the write loop. Call it once.
func (c *Connection) Start() {
	go c.writeLoop()
}

// Send queues a raw payload.
func (c *Connection) Send(payload []byte) error {
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	select {
	case c.send <- payload:
		return nil
	case <-c.closed:
		return ErrClosed
	default:
		c.Close(websocket.ClosePolicyViolation, "send buffer full")
		return errors.New("realtime: send buffer exceeded")
	}
}

// SendJSON encodes frame and queues it.
func (c *Connection) SendJSON(frame any) error {
	b, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return c.Send(b)
}

// Done is closed when the connection shuts down.
func (c *Connection) Done() <-chan struct{} { return c.closed }

func (c *Connection) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.closed)
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
		_ = c.ws.Close()
	})
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.closed:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write failed")
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "ping failed")
				return
			}
		}
	}
}

func (c *Connection) write(kind int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(kind, payload)
}
