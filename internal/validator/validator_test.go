package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email string `json:"email" validate:"required,email"`
	Tier  string `json:"tier" validate:"omitempty,oneof=regular premium"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Email: "dana@pilots.test", Tier: "premium"})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Email: "not-an-email", Tier: "platinum"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "tier")
	assert.NotContains(t, vErr.Errors, "Email", "field names must come from json tags")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must be one of: regular, premium", vErr.Errors["tier"])
}
