// Package contact implements the contact form: field state, local
// validation and the single-flight hand-off to an email-delivery Sender.
package contact

import (
	"errors"
	"strings"
	"sync"
)

// ErrInFlight is returned when a submission is already pending for a form.
var ErrInFlight = errors.New("contact: submission already in flight")

// Status is the submission lifecycle of a form. A Form only ever rests in
// StatusIdle or StatusSubmitting; StatusSucceeded and StatusFailed appear
// only as the outcome in Result.Status.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fields are the three user-editable values of the form.
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f Fields) Trimmed() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Form is the state of one contact form instance. A form rests in
// StatusIdle or StatusSubmitting; succeeded and failed are reported as
// outcomes and the form goes straight back to idle.
type Form struct {
	mu     sync.Mutex
	fields Fields
	status Status
}

// NewForm returns an empty, idle form.
func NewForm() *Form {
	return &Form{}
}

// Fields returns the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Update replaces the field values. It is rejected while a submission is
// pending because the input controls are disabled then.
func (f *Form) Update(v Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return ErrInFlight
	}
	f.fields = v
	return nil
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submitting reports whether a submission is pending.
func (f *Form) Submitting() bool {
	return f.Status() == StatusSubmitting
}

// begin checks the current values and moves the form to submitting,
// returning the values to send. A failed check leaves the status untouched.
func (f *Form) begin(check func(Fields) error) (Fields, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return Fields{}, ErrInFlight
	}
	if err := check(f.fields); err != nil {
		return Fields{}, err
	}
	f.status = StatusSubmitting
	return f.fields, nil
}

// finish returns the form to idle, clearing the fields on success.
func (f *Form) finish(succeeded bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if succeeded {
		f.fields = Fields{}
	}
	f.status = StatusIdle
}
