// Package contactform implements the lead-capture form shown in the contact
// overlay: field state, validation and the hand-off of a validated submission.
package contactform

import (
	"context"
	"errors"
	"strings"
	"time"

	"northern-forge-site/internal/domain"
	"northern-forge-site/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type State int

const (
	Editing State = iota
	Submitting
	Accepted
	Rejected
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Banner texts shown above the form when delivery fails
const (
	FailureMessage     = "We couldn't send your message. Please try again or email us directly."
	UnavailableMessage = "Our contact form is temporarily unavailable. Please email us directly."
)

// Closer is the overlay the form closes once a submission is accepted
type Closer interface {
	Close()
}

// Submitter is the collaborator that delivers an accepted submission
type Submitter interface {
	SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) error
}

type Form struct {
	validate *validator.Validate
	closer   Closer
	values   domain.ContactForm
	errors   domain.FieldErrors
	failure  string
	state    State

	now   func() time.Time
	newID func() string
}

// New builds a form in the Editing state. A non-empty preselected category
// seeds serviceInterest; the visitor can still change it. closer may be nil
// when the form is not shown in an overlay.
func New(v *validator.Validate, closer Closer, preselected string) *Form {
	f := &Form{
		validate: v,
		closer:   closer,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	if preselected != "" {
		f.values.ServiceInterest = preselected
	}
	return f
}

func (f *Form) State() State { return f.state }

func (f *Form) Values() domain.ContactForm { return f.values }

func (f *Form) Errors() domain.FieldErrors { return f.errors }

// Failure is the banner text left by a failed delivery, empty otherwise
func (f *Form) Failure() string { return f.failure }

func (f *Form) FieldError(name string) string { return f.errors[name] }

// Edit replaces the field values with what the visitor entered. Errors from a
// rejected attempt stay visible until the next Submit.
func (f *Form) Edit(values domain.ContactForm) {
	f.values = values
	if f.state == Rejected || f.state == Accepted {
		f.state = Editing
	}
}

// Submit validates the current values. On rejection the per-field errors are
// recorded and returned as domain.FieldErrors; the submitter is not called.
// On acceptance exactly one submission is handed to the submitter; if that
// fails the form goes back to Editing with a failure banner and keeps its
// values. On success the form is reset and the overlay closed.
func (f *Form) Submit(ctx context.Context, submitter Submitter) (*domain.ContactSubmission, error) {
	f.state = Submitting
	f.failure = ""

	clean := normalize(f.values)
	if err := f.validate.Struct(clean); err != nil {
		fields := validation.FormatFieldErrors(err)
		if fields == nil {
			f.state = Editing
			return nil, err
		}
		f.errors = domain.FieldErrors(fields)
		f.state = Rejected
		return nil, f.errors
	}
	f.errors = nil

	sub := &domain.ContactSubmission{
		ID:              f.newID(),
		Name:            clean.Name,
		BusinessName:    clean.BusinessName,
		Email:           clean.Email,
		Phone:           clean.Phone,
		ServiceInterest: clean.ServiceInterest,
		Message:         clean.Message,
		Consultation:    clean.Consultation,
		SubmittedAt:     f.now(),
	}

	if err := submitter.SendContactMessage(ctx, sub); err != nil {
		f.state = Editing
		if errors.Is(err, domain.ErrDeliveryUnavailable) {
			f.failure = UnavailableMessage
		} else {
			f.failure = FailureMessage
		}
		return nil, err
	}

	f.Reset()
	f.state = Accepted
	if f.closer != nil {
		f.closer.Close()
	}
	return sub, nil
}

// Reset discards every field value, error and banner
func (f *Form) Reset() {
	f.values = domain.ContactForm{}
	f.errors = nil
	f.failure = ""
	f.state = Editing
}

// normalize trims every text field. Free text is kept verbatim; every
// output path escapes it.
func normalize(in domain.ContactForm) domain.ContactForm {
	return domain.ContactForm{
		Name:            strings.TrimSpace(in.Name),
		BusinessName:    strings.TrimSpace(in.BusinessName),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		ServiceInterest: strings.TrimSpace(in.ServiceInterest),
		Message:         strings.TrimSpace(in.Message),
		Consultation:    in.Consultation,
	}
}
