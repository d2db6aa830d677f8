// Package form holds the client-side state of one contact form: the
// values being typed, their inline errors, and the single in-flight
// submission.
package form

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/pooja2309/portfolio/internal/contact"
)

// Dispatcher sends a validated submission. *client.Client satisfies it.
type Dispatcher interface {
	CreateSubmission(ctx context.Context, in contact.Input) (*contact.Ack, error)
}

// Status is the outcome of a Submit call.
type Status int

const (
	Invalid Status = iota // validation failed, nothing sent
	Ignored               // another submission was already in flight
	Sent
	Failed
)

func (s Status) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Ignored:
		return "ignored"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Notification is the toast shown after a dispatch.
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

const (
	successTitle       = "Message sent successfully!"
	failureTitle       = "Failed to send message"
	failureDescription = "Please try again later."
)

// Result describes what Submit did.
type Result struct {
	Status       Status
	Notification Notification // empty for Invalid and Ignored
	Err          error        // set for Invalid and Failed
}

// Form is safe for concurrent use. At most one submission is outstanding
// at any time.
type Form struct {
	dispatcher Dispatcher
	inFlight   atomic.Bool

	mu     sync.Mutex
	values contact.Input
	errs   contact.FieldErrors
	last   Notification
}

// New returns an empty form that submits through d.
func New(d Dispatcher) *Form {
	return &Form{dispatcher: d, errs: contact.FieldErrors{}}
}

// Set updates one field. An inline error on that field is dropped once the
// new value passes validation. Unknown fields are ignored.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, ok := f.values.With(field, value)
	if !ok {
		return
	}
	f.values = next
	if _, has := f.errs[field]; has && contact.CheckField(field, value) == "" {
		delete(f.errs, field)
	}
}

// Submit validates the current values and, if they pass, dispatches them.
// It blocks until the dispatcher returns. On success the fields are reset
// unless one was changed with Set while the request was pending.
func (f *Form) Submit(ctx context.Context) Result {
	if !f.inFlight.CompareAndSwap(false, true) {
		return Result{Status: Ignored}
	}
	defer f.inFlight.Store(false)

	f.mu.Lock()
	sent := f.values
	valid, err := contact.Validate(sent)
	if err != nil {
		var fe contact.FieldErrors
		if errors.As(err, &fe) {
			f.errs = fe
		}
		f.mu.Unlock()
		return Result{Status: Invalid, Err: err}
	}
	f.errs = contact.FieldErrors{}
	f.mu.Unlock()

	ack, err := f.dispatcher.CreateSubmission(ctx, valid)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.last = Notification{Title: failureTitle, Description: failureDescription, Destructive: true}
		return Result{Status: Failed, Notification: f.last, Err: err}
	}
	// Edits made while the request was pending are kept.
	if f.values == sent {
		f.values = contact.Input{}
	}
	f.last = Notification{Title: successTitle, Description: ack.Message}
	return Result{Status: Sent, Notification: f.last}
}

// Pending reports whether a submission is in flight. The submit action is
// disabled while it is true.
func (f *Form) Pending() bool {
	return f.inFlight.Load()
}

// Values returns the current field values.
func (f *Form) Values() contact.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns a copy of the inline field errors.
func (f *Form) Errors() contact.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(contact.FieldErrors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Notification returns the most recent toast, if any.
func (f *Form) Notification() Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}
