package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sender delivers a validated, trimmed message. It is implemented by the
// external email-delivery client.
type Sender interface {
	Send(ctx context.Context, msg Fields) error
}

// DeliveryError is a failure reported by a Sender. Text carries any
// human-readable detail the provider returned.
type DeliveryError struct {
	Text string
	Err  error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Err != nil && e.Text != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Text)
	case e.Err != nil:
		return e.Err.Error()
	case e.Text != "":
		return e.Text
	default:
		return "delivery failed"
	}
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// NotificationKind selects how a notification is presented.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is the blocking, user-visible message produced by a submission.
type Notification struct {
	Kind    NotificationKind
	Message string
}

const (
	msgSent          = "Message sent successfully! Thank you for contacting me."
	msgFailed        = "Failed to send message. Please try again."
	msgFailedPrefix  = "EmailJS Error: "
	msgAlreadySubmit = "Your message is still being sent."
)

// DeliveryOutcome is the recorded result of a delivery attempt.
type DeliveryOutcome string

const (
	DeliverySent   DeliveryOutcome = "sent"
	DeliveryFailed DeliveryOutcome = "failed"
)

// Delivery describes one call to the Sender, for the operator's log.
type Delivery struct {
	ID        string
	Fields    Fields
	Outcome   DeliveryOutcome
	Detail    string
	CreatedAt time.Time
}

// Result is what a submission produced. Delivery is nil when the Sender was
// never called.
type Result struct {
	Status       Status
	Notification Notification
	Delivery     *Delivery
}

// Submitter validates forms and hands them to a Sender.
type Submitter struct {
	sender Sender
	now    func() time.Time
}

// NewSubmitter returns a Submitter delivering through sender.
func NewSubmitter(sender Sender) *Submitter {
	return &Submitter{sender: sender, now: time.Now}
}

// Submit runs one submission of form. Validation failures never reach the
// Sender and leave the form as it was. While the Sender runs the form is
// submitting and rejects other submissions with ErrInFlight. On success the
// fields are cleared; on failure they are kept so nothing typed is lost.
// The returned error is the validation, in-flight or delivery error, if any.
func (s *Submitter) Submit(ctx context.Context, form *Form) (Result, error) {
	fields, err := form.begin(Validate)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return Result{
				Status:       form.Status(),
				Notification: Notification{Kind: NotifyError, Message: verr.Error()},
			}, err
		case errors.Is(err, ErrInFlight):
			return Result{
				Status:       StatusSubmitting,
				Notification: Notification{Kind: NotifyError, Message: msgAlreadySubmit},
			}, err
		}
		return Result{}, err
	}

	msg := fields.Trimmed()
	d := &Delivery{
		ID:        uuid.NewString(),
		Fields:    msg,
		CreatedAt: s.now().UTC(),
	}

	sendErr := s.sender.Send(ctx, msg)
	form.finish(sendErr == nil)

	if sendErr != nil {
		d.Outcome = DeliveryFailed
		d.Detail = failureText(sendErr)
		return Result{
			Status:       StatusFailed,
			Notification: Notification{Kind: NotifyError, Message: failureMessage(sendErr)},
			Delivery:     d,
		}, sendErr
	}
	d.Outcome = DeliverySent
	return Result{
		Status:       StatusSucceeded,
		Notification: Notification{Kind: NotifySuccess, Message: msgSent},
		Delivery:     d,
	}, nil
}

func failureText(err error) string {
	var derr *DeliveryError
	if errors.As(err, &derr) && derr.Text != "" {
		return derr.Text
	}
	return err.Error()
}

func failureMessage(err error) string {
	var derr *DeliveryError
	if errors.As(err, &derr) && derr.Text != "" {
		return msgFailedPrefix + derr.Text
	}
	return msgFailed
}
