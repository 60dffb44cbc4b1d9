package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local-part@domain.tld, case-insensitive, TLD of two or more letters
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
)

// New returns a validator with the custom contact tags registered.
// offerings is the fixed set accepted by the service_offering tag.
func New(offerings []string) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v, offerings)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, offerings []string) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("service_offering", ServiceOffering(offerings))
}

// NotBlank fails on strings that are empty after trimming whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ContactEmail validates the local-part@domain.tld shape used by the contact form
func ContactEmail(fl validator.FieldLevel) bool {
	return IsContactEmail(fl.Field().String())
}

// IsContactEmail is the predicate behind the contact_email tag
func IsContactEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// ServiceOffering builds a validator accepting only the given offering names
func ServiceOffering(offerings []string) validator.Func {
	allowed := make(map[string]struct{}, len(offerings))
	for _, o := range offerings {
		allowed[o] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[strings.TrimSpace(fl.Field().String())]
		return ok
	}
}

// jsonFieldName reports fields by their json name so error keys match the
// names used in forms and API payloads
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
