package portrait

import (
	"context"
	"errors"
	"sync"
)

// State is the per-view portrait resolution state.
type State int

const (
	Unresolved State = iota
	UsingPrimary
	Loading
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case UsingPrimary:
		return "using-primary"
	case Loading:
		return "loading"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "unresolved"
	}
}

// Lookup resolves a portrait for a character name. *Resolver implements it.
type Lookup interface {
	Resolve(ctx context.Context, name string) (Result, error)
}

var _ Lookup = (*Resolver)(nil)

// Tracker guards portrait resolution for one detail view: at most one lookup
// in flight, none after success or failure, and no commits after Teardown.
// It is safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	state  State
	result Result
	err    error
	cancel context.CancelFunc
	closed bool
}

// NewTracker starts in UsingPrimary when image is on the primary host,
// otherwise Unresolved.
func NewTracker(image string) *Tracker {
	t := &Tracker{}
	if IsPrimary(image) {
		t.state = UsingPrimary
		t.result = Result{URL: image}
	}
	return t
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// CanTrigger reports whether the fallback control should be offered.
func (t *Tracker) CanTrigger() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed && t.state == Unresolved
}

// Begin moves Unresolved to Loading and returns a context that Teardown
// cancels. ok is false when a lookup is in flight, already settled, or the
// view is gone.
func (t *Tracker) Begin(parent context.Context) (ctx context.Context, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.state != Unresolved {
		return nil, false
	}
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.state = Loading
	return ctx, true
}

// Finish commits the outcome of the lookup started by Begin. It returns false
// when nothing was committed: the view was torn down or the lookup aborted.
func (t *Tracker) Finish(res Result, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.closed || t.state != Loading {
		return false
	}
	if errors.Is(err, ErrAborted) {
		t.state = Unresolved
		return false
	}
	if err != nil {
		t.state = Failed
		t.err = err
		return true
	}
	t.state = Resolved
	t.result = res
	return true
}

// Run performs one guarded lookup. It returns false without calling lookup
// when Begin refuses.
func (t *Tracker) Run(parent context.Context, lookup Lookup, name string) bool {
	ctx, ok := t.Begin(parent)
	if !ok {
		return false
	}
	res, err := lookup.Resolve(ctx, name)
	return t.Finish(res, err)
}

// Teardown cancels any lookup in flight and blocks later commits. Calling it
// more than once is harmless.
func (t *Tracker) Teardown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Result returns the portrait in use, if any.
func (t *Tracker) Result() Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Message returns the inline failure text, empty unless Failed.
func (t *Tracker) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Failed {
		return ""
	}
	return Message(t.err)
}
