package domain

import (
	"context"
	"sort"
	"strings"
	"time"
)

// ContactForm holds the contact form fields as entered by the visitor.
// Field names double as the keys of FieldErrors.
type ContactForm struct {
	Name            string `json:"name" form:"name" validate:"notblank"`
	BusinessName    string `json:"businessName" form:"businessName" validate:"notblank"`
	Email           string `json:"email" form:"email" validate:"notblank,contact_email"`
	Phone           string `json:"phone,omitempty" form:"phone"`
	ServiceInterest string `json:"serviceInterest" form:"serviceInterest" validate:"notblank,service_offering"`
	Message         string `json:"message" form:"message" validate:"notblank"`
	Consultation    bool   `json:"consultation" form:"consultation"`
}

// ContactSubmission is a fully validated contact request. It is only built
// after every required field has passed validation.
type ContactSubmission struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BusinessName    string    `json:"businessName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ServiceInterest string    `json:"serviceInterest"`
	Message         string    `json:"message"`
	Consultation    bool      `json:"consultation"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// FieldErrors maps a form field name to the message shown under it
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// ContactSink delivers a submission somewhere: email, CRM, lead table
type ContactSink interface {
	Name() string
	Deliver(ctx context.Context, sub *ContactSubmission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage hands a validated submission to every configured sink
	SendContactMessage(ctx context.Context, sub *ContactSubmission) error
	// Available reports whether at least one sink is configured
	Available() bool
}
