package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name            string `json:"name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank,contact_email"`
	ServiceInterest string `json:"serviceInterest" validate:"notblank,service_offering"`
	FavouriteColour string `json:"favouriteColour" validate:"notblank"`
}

func TestIsContactEmail(t *testing.T) {
	valid := []string{"user@domain.tld", "First.Last+tag@sub.example.co.uk", "A_B%c@X-Y.IO"}
	for _, e := range valid {
		assert.True(t, IsContactEmail(e), e)
	}

	invalid := []string{"", "userdomain.tld", "user@domain", "user@domain.t", "@domain.tld", "user@.c", "user name@domain.tld"}
	for _, e := range invalid {
		assert.False(t, IsContactEmail(e), e)
	}
}

func TestFormatFieldErrors(t *testing.T) {
	v := New([]string{"Starter Forge", "Master Forge"})

	err := v.Struct(sample{
		Name:            "   ",
		Email:           "not-an-email",
		ServiceInterest: "quote",
	})
	require.Error(t, err)

	msgs := FormatFieldErrors(err)
	assert.Equal(t, "Name is required", msgs["name"])
	assert.Equal(t, "Invalid email address", msgs["email"])
	assert.Equal(t, "Please select a service", msgs["serviceInterest"])
	assert.Equal(t, "Favourite colour is required", msgs["favouriteColour"])
}

func TestEmptyEmailReportsRequired(t *testing.T) {
	v := New(nil)
	msgs := FormatFieldErrors(v.Var("", "notblank,contact_email"))
	// Var errors carry no field name, the tag still drives the fallback
	require.Len(t, msgs, 1)
	for _, m := range msgs {
		assert.Contains(t, m, "is required")
	}
}

func TestServiceOfferingAcceptsConfiguredNames(t *testing.T) {
	v := New([]string{"Hive-Mind Waitlist"})
	assert.NoError(t, v.Var("Hive-Mind Waitlist", "service_offering"))
	assert.Error(t, v.Var("Hive-Mind System", "service_offering"))
}

func TestFormatFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FormatFieldErrors(assert.AnError))
}
