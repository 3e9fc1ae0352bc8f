//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"event-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndIs(t *testing.T) {
	base := errors.New("db down")
	marked := errs.Mark(base, errs.ErrNotFound)

	assert.True(t, errs.Is(marked, errs.ErrNotFound))
	assert.True(t, errs.Is(marked, base))
	assert.False(t, errs.Is(marked, errs.ErrAccessDenied))
	assert.Equal(t, errs.ErrAccessDenied, errs.Mark(nil, errs.ErrAccessDenied))
}

func TestValidationError(t *testing.T) {
	t.Run("collects first message per field", func(t *testing.T) {
		v := errs.NewValidationError()
		v.Add("venue", "The venue field is required.")
		v.Add("venue", "ignored")
		v.Add("event_type", "The event type field is required.")

		require.True(t, v.HasErrors())
		assert.Equal(t, "The venue field is required.", v.Fields["venue"])
		assert.Equal(t, "validation failed: event_type: The event type field is required.; venue: The venue field is required.", v.Error())
	})

	t.Run("empty collector is nil error", func(t *testing.T) {
		assert.NoError(t, errs.NewValidationError().OrNil())
	})

	t.Run("survives wrapping and marking", func(t *testing.T) {
		err := errs.Wrap(errs.FieldError("selected_foods", "too much"), "submit")

		assert.True(t, errs.Is(err, errs.ErrValidation))
		v, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "too much", v.Fields["selected_foods"])
	})
}
