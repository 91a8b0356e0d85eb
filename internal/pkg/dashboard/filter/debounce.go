package filter

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period an edit must survive before it reaches the list query.
const DefaultDelay = 500 * time.Millisecond

// Filters is a loosely typed filter object keyed by the backend's filter field names.
type Filters map[string]any

// Clone returns a shallow copy; nil stays nil-safe for callers that range over it.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Debouncer holds a draft filter object that is edited freely and a stable copy that
// only changes after the draft has been quiet for the configured delay.
// It is safe for concurrent use. onPromote runs on the timer goroutine.
type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	draft      Filters
	stable     Filters
	timer      *time.Timer
	generation uint64
	debouncing bool
	stopped    bool
	onPromote  func(Filters)
}

// New creates a Debouncer whose draft and stable filters both start as initial.
// A non-positive delay falls back to DefaultDelay.
func New(initial Filters, delay time.Duration, onPromote func(Filters)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay:     delay,
		draft:     initial.Clone(),
		stable:    initial.Clone(),
		onPromote: onPromote,
	}
}

// Update edits one draft field and re-arms the timer. An empty string or nil removes the field.
func (d *Debouncer) Update(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if isEmpty(value) {
		delete(d.draft, key)
	} else {
		d.draft[key] = value
	}
	d.armLocked()
}

// Replace swaps the whole draft at once and re-arms the timer.
func (d *Debouncer) Replace(draft Filters) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.draft = make(Filters, len(draft))
	for k, v := range draft {
		if !isEmpty(v) {
			d.draft[k] = v
		}
	}
	d.armLocked()
}

// Draft returns a copy of the filters being edited.
func (d *Debouncer) Draft() Filters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft.Clone()
}

// Stable returns a copy of the filters that feed the list query.
func (d *Debouncer) Stable() Filters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stable.Clone()
}

// IsDebouncing reports whether a promotion is pending.
func (d *Debouncer) IsDebouncing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.debouncing
}

// Flush promotes the current draft immediately, cancelling any pending timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	promoted := d.promoteLocked()
	d.mu.Unlock()

	d.emit(promoted)
}

// Stop cancels any pending promotion. Later updates are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.debouncing = false
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) armLocked() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.debouncing = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A stopped timer may still have been scheduled before the lock was released.
	if gen != d.generation || d.stopped {
		d.mu.Unlock()
		return
	}
	promoted := d.promoteLocked()
	d.mu.Unlock()

	d.emit(promoted)
}

func (d *Debouncer) promoteLocked() Filters {
	d.stable = d.draft.Clone()
	d.debouncing = false
	d.timer = nil
	return d.stable.Clone()
}

func (d *Debouncer) emit(f Filters) {
	if d.onPromote != nil {
		d.onPromote(f)
	}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
