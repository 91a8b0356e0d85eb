package review

import (
	"context"
	"strings"
	"sync"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/failure"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/viewer"
)

// State is the modal state of a review.
type State string

const (
	Closed    State = "closed"
	Viewing   State = "viewing"
	Approving State = "approving"
	Rejecting State = "rejecting"
)

var (
	ErrReasonRequired = failure.New(failure.KindValidation, "A reason is required to reject")
	ErrInFlight       = failure.New(failure.KindConflict, "This review is already being submitted")
)

// Record is the submission under review.
type Record struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Documents []string `json:"documents"`
	Payload   any      `json:"payload,omitempty"`
}

// Decision is handed to the submitter. Reason is nil for approvals.
type Decision struct {
	RecordID string
	Approved bool
	Reason   *string
}

// Submitter dispatches the decision through the mutation pattern.
type Submitter func(ctx context.Context, d Decision) mutation.Outcome

// Snapshot is the serializable state of a workflow.
type Snapshot struct {
	State      State        `json:"state"`
	Record     *Record      `json:"record,omitempty"`
	Viewer     viewer.State `json:"viewer"`
	Submitting bool         `json:"submitting"`
}

// Workflow drives one review modal: Closed → Viewing → Approving|Rejecting → Closed.
// Submit controls are disabled while its own mutation is in flight.
type Workflow struct {
	mu       sync.Mutex
	state    State
	record   *Record
	viewer   viewer.State
	inFlight bool
	submit   Submitter
}

// NewWorkflow creates a closed workflow that sends decisions through submit.
func NewWorkflow(submit Submitter) *Workflow {
	return &Workflow{state: Closed, submit: submit}
}

// Open shows rec. Opening while another record is shown replaces it.
func (w *Workflow) Open(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrInFlight
	}
	w.record = &rec
	w.viewer = viewer.New(rec.Documents)
	w.state = Viewing
	return nil
}

// BeginApprove moves to the approval confirmation.
func (w *Workflow) BeginApprove() error { return w.move(Approving) }

// BeginReject moves to the rejection form, which needs a reason.
func (w *Workflow) BeginReject() error { return w.move(Rejecting) }

// Back returns from a confirmation to viewing.
func (w *Workflow) Back() error { return w.move(Viewing) }

func (w *Workflow) move(to State) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrInFlight
	}
	if w.state == Closed {
		return failure.Invalid("review is not open")
	}
	w.state = to
	return nil
}

// View applies a document viewer transition.
func (w *Workflow) View(op viewer.Op) (Snapshot, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == Closed {
		return w.snapshotLocked(), "", failure.Invalid("review is not open")
	}
	next, url, err := w.viewer.Apply(op)
	if err != nil {
		return w.snapshotLocked(), "", failure.Invalid("%s", err.Error())
	}
	w.viewer = next
	return w.snapshotLocked(), url, nil
}

// Submit sends the pending decision. Rejections with a blank reason are refused without
// dispatching anything. The workflow returns to Closed after the mutation resolves,
// whether it succeeded or failed.
func (w *Workflow) Submit(ctx context.Context, reason string) (mutation.Outcome, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return mutation.Outcome{}, ErrInFlight
	}
	var d Decision
	switch w.state {
	case Approving:
		d = Decision{RecordID: w.record.ID, Approved: true}
	case Rejecting:
		trimmed := strings.TrimSpace(reason)
		if trimmed == "" {
			w.mu.Unlock()
			return mutation.Outcome{}, ErrReasonRequired
		}
		d = Decision{RecordID: w.record.ID, Approved: false, Reason: &trimmed}
	default:
		w.mu.Unlock()
		return mutation.Outcome{}, failure.Invalid("choose approve or reject before submitting")
	}
	w.inFlight = true
	submit := w.submit
	w.mu.Unlock()

	out := submit(ctx, d)

	w.mu.Lock()
	w.inFlight = false
	w.state = Closed
	w.record = nil
	w.viewer = viewer.State{}
	w.mu.Unlock()
	return out, nil
}

// Close dismisses the modal without submitting.
func (w *Workflow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrInFlight
	}
	w.state = Closed
	w.record = nil
	w.viewer = viewer.State{}
	return nil
}

// Snapshot returns the current state.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workflow) snapshotLocked() Snapshot {
	s := Snapshot{State: w.state, Viewer: w.viewer, Submitting: w.inFlight}
	if w.record != nil {
		rec := *w.record
		s.Record = &rec
	}
	return s
}
