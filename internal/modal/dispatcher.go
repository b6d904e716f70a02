// Package modal implements the single-active-modal workflow: open an overlay of a
// given kind, submit it once, and report the outcome to exactly one callback.
//
// Each modal kind is a Form[P, R] carrying its own typed request and callbacks,
// so the Dispatcher never looks options up by name. Submit is a generic function
// because Go methods cannot take type parameters.
package modal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
)

// Kind names a modal variant.
type Kind string

// NetworkErrorMessage is reported when the backend could not be reached.
const NetworkErrorMessage = "Network error. Please try again."

// Misuse errors all match app_errors.ErrConflict.
var (
	ErrNotOpen      = fmt.Errorf("%w: no modal is open", app_errors.ErrConflict)
	ErrInFlight     = fmt.Errorf("%w: a modal submit is in flight", app_errors.ErrConflict)
	ErrKindMismatch = fmt.Errorf("%w: submit does not match the open modal", app_errors.ErrConflict)
)

// Variant is an openable modal. Form is the only implementation.
type Variant interface {
	Kind() Kind
	variant()
}

// Callbacks are the typed success/error hooks of one Form. At most one of them
// runs per submit.
type Callbacks[P, R any] struct {
	OnSuccess func(data R, payload P)
	OnError   func(message string)
}

// Form is a modal variant whose submit sends a P and receives an R.
type Form[P, R any] struct {
	kind      Kind
	fallback  string
	request   func(ctx context.Context, payload P) (R, error)
	callbacks Callbacks[P, R]
}

// NewForm builds a variant. fallback is the message reported when the backend
// rejects the request without saying why.
func NewForm[P, R any](kind Kind, fallback string, request func(context.Context, P) (R, error), cb Callbacks[P, R]) *Form[P, R] {
	return &Form[P, R]{kind: kind, fallback: fallback, request: request, callbacks: cb}
}

func (f *Form[P, R]) Kind() Kind { return f.kind }
func (f *Form[P, R]) variant()   {}

// Outcome is the result of a submit: Value on success, or Err and a displayable
// Message on failure. Err wraps ErrTransport or ErrRejected for backend failures.
type Outcome[R any] struct {
	Value   R
	Err     error
	Message string
}

func (o Outcome[R]) OK() bool { return o.Err == nil }

// State is a point-in-time view of the dispatcher.
type State struct {
	Kind      Kind   `json:"kind,omitempty"`
	Open      bool   `json:"open"`
	InFlight  bool   `json:"in_flight"`
	LastError string `json:"last_error,omitempty"`
}

// Dispatcher holds the one modal that may be open at a time.
type Dispatcher struct {
	mu        sync.Mutex
	active    Variant
	inFlight  bool
	lastError string
	onChange  func()
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnChange registers fn to be called after every state change, outside the lock.
func (d *Dispatcher) OnChange(fn func()) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

// Open makes v the active modal, replacing any other. It is refused while a
// submit is in flight so the pending callbacks are not orphaned.
func (d *Dispatcher) Open(v Variant) error {
	d.mu.Lock()
	if d.inFlight {
		d.mu.Unlock()
		return ErrInFlight
	}
	d.active = v
	d.lastError = ""
	fn := d.onChange
	d.mu.Unlock()
	slog.Debug("Modal opened", "kind", v.Kind())
	notify(fn)
	return nil
}

// Close discards the active modal and its callbacks. It is a no-op returning
// false while a submit is in flight.
func (d *Dispatcher) Close() bool {
	d.mu.Lock()
	if d.inFlight {
		d.mu.Unlock()
		return false
	}
	wasOpen := d.active != nil
	d.active = nil
	d.lastError = ""
	fn := d.onChange
	d.mu.Unlock()
	if wasOpen {
		notify(fn)
	}
	return true
}

func (d *Dispatcher) IsOpen(kind Kind) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active != nil && d.active.Kind() == kind
}

func (d *Dispatcher) InFlight() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight
}

func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := State{InFlight: d.inFlight, LastError: d.lastError}
	if d.active != nil {
		s.Kind = d.active.Kind()
		s.Open = true
	}
	return s
}

// Submit sends payload through the open modal of the given kind and fires exactly
// one of its callbacks. Success closes the modal; failure leaves it open for a
// retry. The returned error only reports misuse (nothing open, wrong kind, or a
// submit already in flight); backend failures are carried by the Outcome.
func Submit[P, R any](ctx context.Context, d *Dispatcher, kind Kind, payload P) (Outcome[R], error) {
	d.mu.Lock()
	if d.active == nil {
		d.mu.Unlock()
		return Outcome[R]{}, ErrNotOpen
	}
	if d.inFlight {
		d.mu.Unlock()
		return Outcome[R]{}, ErrInFlight
	}
	form, ok := d.active.(*Form[P, R])
	if !ok || form.kind != kind {
		d.mu.Unlock()
		return Outcome[R]{}, ErrKindMismatch
	}
	d.inFlight = true
	d.lastError = ""
	fn := d.onChange
	d.mu.Unlock()
	notify(fn)

	value, err := form.request(ctx, payload)

	if err != nil {
		out := Outcome[R]{Err: err, Message: failureMessage(err, form.fallback)}
		d.mu.Lock()
		d.inFlight = false
		d.lastError = out.Message
		fn = d.onChange
		d.mu.Unlock()

		submitsTotal.WithLabelValues(string(kind), "error").Inc()
		slog.Warn("Modal submit failed", "kind", kind, "error", err)
		if form.callbacks.OnError != nil {
			form.callbacks.OnError(out.Message)
		}
		notify(fn)
		return out, nil
	}

	submitsTotal.WithLabelValues(string(kind), "success").Inc()
	slog.Info("Modal submit succeeded", "kind", kind)
	// The modal stays open and in flight until its success callback returns.
	if form.callbacks.OnSuccess != nil {
		form.callbacks.OnSuccess(value, payload)
	}

	d.mu.Lock()
	d.inFlight = false
	d.active = nil
	fn = d.onChange
	d.mu.Unlock()
	notify(fn)
	return Outcome[R]{Value: value}, nil
}

// failureMessage picks the text shown to the user. Transport failures get a
// fixed message; rejections use the backend's message or the form's fallback.
func failureMessage(err error, fallback string) string {
	if backend.IsTransport(err) {
		return NetworkErrorMessage
	}
	if msg := app_errors.RejectionMessage(err); msg != "" {
		return msg
	}
	return fallback
}

func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
