package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records what the write loop sends.
type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closes   []int
	closed   bool
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) WriteMessage(kind int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if kind == websocket.TextMessage {
		f.messages = append(f.messages, data)
	}
	return nil
}

func (f *fakeConn) WriteControl(kind int, data []byte, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if kind == websocket.CloseMessage && len(data) >= 2 {
		f.closes = append(f.closes, int(data[0])<<8|int(data[1]))
	}
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.messages))
	for i, m := range f.messages {
		out[i] = string(m)
	}
	return out
}

func TestPublishSkipsExcludedAdmin(t *testing.T) {
	r := NewRouter()
	a, b := &fakeConn{}, &fakeConn{}
	ca, cb := NewConnection("admin-a", a), NewConnection("admin-b", b)
	r.Attach(ca)
	r.Attach(cb)
	require.True(t, r.Join("conversation:c1", ca))
	require.True(t, r.Join("conversation:c1", cb))

	n := r.Publish("conversation:c1", map[string]string{"type": "message"}, "admin-a")
	assert.Equal(t, 1, n)
	assert.Eventually(t, func() bool { return len(b.received()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, a.received())
	assert.JSONEq(t, `{"type":"message"}`, b.received()[0])
}

func TestAttachReplacesPreviousSocket(t *testing.T) {
	r := NewRouter()
	first, second := &fakeConn{}, &fakeConn{}
	c1 := NewConnection("admin-a", first)
	r.Attach(c1)
	r.Join("notifications", c1)

	r.Attach(NewConnection("admin-a", second))

	assert.Equal(t, []int{CloseReplaced}, first.closes)
	assert.Equal(t, 0, r.Members("notifications"))
	assert.Equal(t, []string{"admin-a"}, r.Online())
	assert.ErrorIs(t, c1.Send([]byte("late")), ErrClosed)
}

func TestNotifyAndDetach(t *testing.T) {
	r := NewRouter()
	fc := &fakeConn{}
	conn := NewConnection("admin-a", fc)
	r.Attach(conn)

	assert.True(t, r.Notify("admin-a", map[string]int{"unread": 3}))
	assert.False(t, r.Notify("admin-b", map[string]int{"unread": 3}))
	assert.Eventually(t, func() bool { return len(fc.received()) == 1 }, time.Second, 10*time.Millisecond)

	r.Detach(conn)
	assert.False(t, r.Notify("admin-a", nil))
	assert.False(t, r.Join("notifications", conn))
}

func TestCloseDisconnectsEveryone(t *testing.T) {
	r := NewRouter()
	fc := &fakeConn{}
	r.Attach(NewConnection("admin-a", fc))

	r.Close()
	assert.True(t, fc.closed)
	assert.Empty(t, r.Online())
}
