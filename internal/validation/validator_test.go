package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/bibliotecapp/biblioteca-server/internal/errors"
	"github.com/bibliotecapp/biblioteca-server/internal/validation"
)

type testRequest struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required"`
	Year  int    `json:"year" validate:"gte=0"`
}

func TestValidate_Passes(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Email: "alice@example.com", Title: "Clean C++", Year: 2025})
	assert.NoError(t, err)
}

func TestValidate_ReturnsValidationFault(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Email: "not-an-email", Year: -1})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	var fault *domainerrors.Error
	require.True(t, domainerrors.As(err, &fault))

	// Field names come from the json tags.
	details, ok := fault.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "year")
}
