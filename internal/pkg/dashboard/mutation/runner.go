package mutation

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
)

// DefaultFallback is the error toast text when the server gave no usable message.
const DefaultFallback = "Something went wrong. Please try again."

// ToastKind is the visual class of a toast.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification shown to the admin who triggered an action.
type Toast struct {
	ID      string    `json:"id"`
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
	Action  string    `json:"action"`
}

// Result is the `{success, message}` payload most backend mutations return.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Refresher reloads the list that owns the mutated record.
type Refresher interface {
	Refetch(ctx context.Context) error
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refetch(ctx context.Context) error { return f(ctx) }

// Notifier delivers toasts, e.g. to the actor's live socket.
type Notifier interface {
	Notify(ctx context.Context, t Toast)
}

// Entry describes one dispatched mutation for the audit trail.
type Entry struct {
	ID       string
	Actor    string
	Action   string
	Target   string
	Success  bool
	Message  string
	Duration time.Duration
	At       time.Time
}

// Recorder persists audit entries. Recording failures never fail the mutation.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Action binds one backend mutation to its toast messages.
type Action[In any] struct {
	Name           string
	SuccessMessage string
	// FallbackError is used when the failure carries no server message; defaults to DefaultFallback.
	FallbackError string
	// Target identifies the record being mutated; same action + target is never run concurrently.
	Target func(in In) string
	// Validate runs before dispatch; a non-nil error blocks the request.
	Validate func(in In) error
	Run      func(ctx context.Context, in In) (Result, error)
}

// Outcome is what the caller renders after a mutation attempt.
type Outcome struct {
	Toast     Toast `json:"toast"`
	Refreshed bool  `json:"refreshed"`
	// Dispatched is false when validation or the in-flight guard stopped the call.
	Dispatched bool  `json:"dispatched"`
	Err        error `json:"-"`
}

// OK reports whether the mutation succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

type actorKey struct{}

// WithActor tags ctx with the admin performing mutations, for the audit trail.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor stored by WithActor.
func ActorFrom(ctx context.Context) string {
	s, _ := ctx.Value(actorKey{}).(string)
	return s
}

// Runner executes actions with the standard success/failure handling.
// The zero value is usable; Notifier and Recorder are optional.
type Runner struct {
	Notifier Notifier
	Recorder Recorder

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewRunner builds a Runner with the given optional collaborators.
func NewRunner(n Notifier, r Recorder) *Runner {
	return &Runner{Notifier: n, Recorder: r}
}

func (r *Runner) acquire(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inflight == nil {
		r.inflight = make(map[string]struct{})
	}
	if _, busy := r.inflight[key]; busy {
		return false
	}
	r.inflight[key] = struct{}{}
	return true
}

func (r *Runner) release(key string) {
	r.mu.Lock()
	delete(r.inflight, key)
	r.mu.Unlock()
}

// Execute runs action a with input in. On success it shows the success toast and then
// refetches the owning list; on failure it shows an error toast and leaves state alone.
// Nothing is written locally before the server confirms.
func Execute[In any](ctx context.Context, r *Runner, a Action[In], in In, refresh Refresher) Outcome {
	fallback := a.FallbackError
	if fallback == "" {
		fallback = DefaultFallback
	}

	if a.Validate != nil {
		if err := a.Validate(in); err != nil {
			fe := failure.As(err)
			if fe.Kind != failure.KindValidation {
				fe = failure.Wrap(failure.KindValidation, fe.Message, err)
			}
			return r.fail(ctx, a.Name, fe, fallback, false)
		}
	}

	target := ""
	if a.Target != nil {
		target = a.Target(in)
	}
	key := a.Name + ":" + target
	if !r.acquire(key) {
		err := failure.New(failure.KindConflict, fmt.Sprintf("%s is already in progress", a.Name))
		return r.fail(ctx, a.Name, err, fallback, false)
	}
	defer r.release(key)

	started := time.Now()
	res, err := a.Run(ctx, in)
	if err == nil && !res.Success {
		err = failure.New(failure.KindBusiness, res.Message)
	}

	entry := Entry{
		ID:       uuid.NewString(),
		Actor:    ActorFrom(ctx),
		Action:   a.Name,
		Target:   target,
		Success:  err == nil,
		Duration: time.Since(started),
		At:       started.UTC(),
	}
	if err != nil {
		entry.Message = failure.UserMessage(err, fallback)
	} else {
		entry.Message = res.Message
	}
	r.record(ctx, entry)

	if err != nil {
		return r.fail(ctx, a.Name, failure.As(err), fallback, true)
	}

	out := Outcome{
		Toast:      Toast{ID: uuid.NewString(), Kind: ToastSuccess, Message: a.SuccessMessage, Action: a.Name},
		Dispatched: true,
	}
	if out.Toast.Message == "" {
		out.Toast.Message = res.Message
	}
	r.notify(ctx, out.Toast)

	if refresh != nil {
		if rerr := refresh.Refetch(ctx); rerr != nil {
			// The mutation itself succeeded; the list shows its own error panel.
			log.Printf("mutation: refetch after %s failed: %v", a.Name, rerr)
		} else {
			out.Refreshed = true
		}
	}
	return out
}

func (r *Runner) fail(ctx context.Context, action string, err *failure.Error, fallback string, dispatched bool) Outcome {
	out := Outcome{
		Toast:      Toast{ID: uuid.NewString(), Kind: ToastError, Message: failure.UserMessage(err, fallback), Action: action},
		Dispatched: dispatched,
		Err:        err,
	}
	r.notify(ctx, out.Toast)
	return out
}

func (r *Runner) notify(ctx context.Context, t Toast) {
	if r != nil && r.Notifier != nil {
		r.Notifier.Notify(ctx, t)
	}
}

func (r *Runner) record(ctx context.Context, e Entry) {
	if r == nil || r.Recorder == nil {
		return
	}
	// The request may be cancelled right after the mutation; keep the write independent of it.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := r.Recorder.Record(rctx, e); err != nil {
		log.Printf("mutation: record %s on %q: %v", e.Action, e.Target, err)
	}
}
