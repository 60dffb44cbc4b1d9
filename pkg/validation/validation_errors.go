package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldMessages holds the message shown for a failed tag on a given field
var FieldMessages = map[string]map[string]string{
	"name": {
		"notblank": "Name is required",
	},
	"businessName": {
		"notblank": "Business name is required",
	},
	"email": {
		"notblank":      "Email is required",
		"contact_email": "Invalid email address",
	},
	"serviceInterest": {
		"notblank":         "Please select a service",
		"service_offering": "Please select a service",
	},
	"message": {
		"notblank": "Message is required",
	},
}

// FormatFieldErrors converts validator.ValidationErrors into one message per field.
// The first failing tag of a field wins.
func FormatFieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = formatSingleError(e)
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	if tags, ok := FieldMessages[e.Field()]; ok {
		if msg, ok := tags[e.Tag()]; ok {
			return msg
		}
	}

	label := formatCamelCase(e.Field())
	switch e.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// formatCamelCase converts camelCase to a capitalised spaced label
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i == 0 {
			result.WriteString(strings.ToUpper(string(r)))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
			r += 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}
