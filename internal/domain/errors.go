package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrDeliveryUnavailable = errors.New("no contact delivery configured")
	ErrDeliveryFailed      = errors.New("contact delivery failed")
)
