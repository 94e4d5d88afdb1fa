package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name string `validate:"required"`
	City string `validate:"required,max=10"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sampleForm{Name: "a", City: "b"}))
	assert.Error(t, Validate(sampleForm{}))
}

func TestFormatErrorsUnwraps(t *testing.T) {
	err := Validate(sampleForm{City: "uma cidade muito longa"})
	require.Error(t, err)

	wrapped := fmt.Errorf("invalid form: %w", err)
	fieldErrors := FormatErrors(wrapped)

	require.Len(t, fieldErrors, 2)
	assert.Equal(t, "Name", fieldErrors[0].Field)
	assert.Equal(t, "This field is required", fieldErrors[0].Message)
	assert.Equal(t, "City", fieldErrors[1].Field)
	assert.Equal(t, "Value is too long", fieldErrors[1].Message)
}

func TestFormatErrorsNonValidationError(t *testing.T) {
	assert.Empty(t, FormatErrors(fmt.Errorf("boom")))
}
