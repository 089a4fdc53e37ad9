package validator

import (
	"testing"

	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email      string `json:"email" validate:"required,max=10"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Limit      int    `json:"limit" validate:"gte=0,lte=100"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Difficulty: "Easy"}))

	err := v.Validate(&sample{Difficulty: "Trivial", Limit: 500})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, []string{
		"email is required",
		"difficulty must be one of: Easy Medium Hard",
		"limit must be at most 100",
	}, appErr.Details())

	err = v.Validate(&sample{Email: "abcdefghijk@x.io"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"email must be at most 10 characters long"}, appErr.Details())
}
