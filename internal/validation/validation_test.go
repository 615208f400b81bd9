package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblens/internal/models"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain com", "dev@acme.com", true},
		{"net", "dev@acme.net", true},
		{"org", "dev@acme.org", true},
		{"ma", "dev@acme.ma", true},
		{"uppercase", "DEV@ACME.COM", true},
		{"dots and dashes in local part", "first.last-x_y@acme.com", true},
		{"unknown tld", "dev@acme.io", false},
		{"missing at", "acme.com", false},
		{"missing local part", "@acme.com", false},
		{"trailing text", "dev@acme.com extra", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.value))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/logo.svg"))
	assert.True(t, IsURL("http://example.com"))
	assert.False(t, IsURL("ftp://example.com"))
	assert.False(t, IsURL("example.com/logo.svg"))
	assert.False(t, IsURL(""))
}

func TestValidateProfile(t *testing.T) {
	err := ValidateProfile("Jamila", "Frontend Developer", "jamila@acme.com")
	assert.NoError(t, err)

	err = ValidateProfile("", "Frontend Developer", "not-an-email")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, "name", ve.Errors[0].Field)
	assert.Equal(t, "email", ve.Errors[1].Field)
	assert.Equal(t, "email is not valid", ve.Errors[1].Message)
}

func TestValidateProfileEmptyEmail(t *testing.T) {
	err := ValidateProfile("Jamila", "", "  ")
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make(map[string]string)
	for _, fe := range ve.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "email is required", fields["email"])
	assert.Equal(t, "position is required", fields["position"])
}

func validDraft() models.JobDraft {
	return models.JobDraft{
		Company:  "Acme",
		Position: "Frontend Developer",
		Role:     "Frontend",
		Level:    "Senior",
		Contract: "Full Time",
		Location: "Remote",
	}
}

func TestValidateJob(t *testing.T) {
	assert.NoError(t, ValidateJob(validDraft()))

	d := validDraft()
	d.Company = " "
	d.Level = ""
	err := ValidateJob(d)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, "company", ve.Errors[0].Field)
	assert.Equal(t, "level", ve.Errors[1].Field)
}

func TestValidateJobLogo(t *testing.T) {
	d := validDraft()
	d.Logo = "https://example.com/acme.svg"
	assert.NoError(t, ValidateJob(d))

	d.Logo = "not a url"
	err := ValidateJob(d)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "logo", ve.Errors[0].Field)

	// Logo is optional.
	d.Logo = ""
	assert.NoError(t, ValidateJob(d))
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email is not valid"},
	}}
	assert.Equal(t, "validation failed: name: name is required; email: email is not valid", ve.Error())
}
