// Package validation provides the form validation predicates and the
// per-field error type used by the profile and job management forms.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"joblens/internal/models"
)

// emailPattern is the legacy email shape accepted by the profile form.
// Kept as-is so previously stored profiles keep validating.
var emailPattern = regexp.MustCompile(`(?i)^[\w._-]+@\w+\.(com|net|org|ma)$`)

// IsEmpty reports whether a value is empty.
func IsEmpty(value string) bool {
	return value == ""
}

// IsEmail reports whether a value looks like a valid email address.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsURL reports whether a value is an absolute http(s) URL.
func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FieldError is a single validation failure at a specific form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every failing field of one form submission.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateProfile checks the editable profile fields. Skills are managed
// separately and are not part of the form submission.
func ValidateProfile(name, position, email string) error {
	var errs []FieldError

	if IsEmpty(strings.TrimSpace(name)) {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if IsEmpty(strings.TrimSpace(email)) {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !IsEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "email is not valid"})
	}
	if IsEmpty(strings.TrimSpace(position)) {
		errs = append(errs, FieldError{Field: "position", Message: "position is required"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ValidateJob checks a management form draft before it reaches the
// repository. The logo is optional but must be a URL when present.
func ValidateJob(d models.JobDraft) error {
	var errs []FieldError

	required := []struct {
		field, value string
	}{
		{"company", d.Company},
		{"position", d.Position},
		{"contract", d.Contract},
		{"location", d.Location},
		{"role", d.Role},
		{"level", d.Level},
	}
	for _, r := range required {
		if IsEmpty(strings.TrimSpace(r.value)) {
			errs = append(errs, FieldError{Field: r.field, Message: r.field + " is required"})
		}
	}

	if !IsEmpty(d.Logo) && !IsURL(d.Logo) {
		errs = append(errs, FieldError{Field: "logo", Message: "logo must be a valid URL"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
