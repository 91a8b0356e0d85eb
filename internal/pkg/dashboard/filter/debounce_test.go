package filter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type promotion struct {
	at      time.Time
	filters Filters
}

type recorder struct {
	mu    sync.Mutex
	calls []promotion
}

func (r *recorder) record(f Filters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, promotion{at: time.Now(), filters: f})
}

func (r *recorder) snapshot() []promotion {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]promotion(nil), r.calls...)
}

func TestRapidUpdatesPromoteOnlyLastValue(t *testing.T) {
	const delay = 60 * time.Millisecond
	rec := &recorder{}
	d := New(Filters{}, delay, rec.record)
	defer d.Stop()

	var last time.Time
	for _, term := range []string{"j", "jo", "joh", "john"} {
		d.Update("search", term)
		last = time.Now()
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, d.IsDebouncing())
	assert.Empty(t, d.Stable())

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(2 * delay)

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, Filters{"search": "john"}, calls[0].filters)
	assert.GreaterOrEqual(t, calls[0].at.Sub(last), delay)
	assert.Equal(t, Filters{"search": "john"}, d.Stable())
	assert.False(t, d.IsDebouncing())
}

func TestEmptyStringRemovesField(t *testing.T) {
	d := New(Filters{"status": "ACTIVE", "role": "TENANT"}, 20*time.Millisecond, nil)
	defer d.Stop()

	d.Update("status", "")
	d.Update("role", nil)

	assert.Equal(t, Filters{}, d.Draft())
	assert.Equal(t, Filters{"status": "ACTIVE", "role": "TENANT"}, d.Stable())
}

func TestFlushPromotesImmediately(t *testing.T) {
	rec := &recorder{}
	d := New(nil, time.Hour, rec.record)
	defer d.Stop()

	d.Update("status", "PENDING")
	d.Flush()

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, Filters{"status": "PENDING"}, calls[0].filters)
	assert.False(t, d.IsDebouncing())
}

func TestStopCancelsPendingPromotion(t *testing.T) {
	rec := &recorder{}
	d := New(nil, 20*time.Millisecond, rec.record)

	d.Update("status", "BANNED")
	d.Stop()
	d.Update("status", "ACTIVE")
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, rec.snapshot())
	assert.Empty(t, d.Stable())
}

func TestDefaultDelay(t *testing.T) {
	d := New(nil, 0, nil)
	defer d.Stop()
	assert.Equal(t, DefaultDelay, d.delay)
}
