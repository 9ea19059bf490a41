package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrValidation,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "page",
			id:          "/pricing.php",
			expectedMsg: `page "/pricing.php" not found`,
		},
		{
			name:        "with entity only",
			entity:      "page",
			expectedMsg: "page not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "Donations[2].URL",
			message:     "must be a valid URL",
			expectedMsg: "validation failed for Donations[2].URL: must be a valid URL",
		},
		{
			name:        "without field",
			message:     "site has no sections",
			expectedMsg: "validation failed: site has no sections",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.True(t, IsValidation(err))
			assert.False(t, IsNotFound(err))
		})
	}
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("clipboard", "no xclip or xsel")

	assert.Equal(t, "clipboard unavailable: no xclip or xsel", err.Error())
	assert.True(t, IsUnavailable(err))

	bare := NewUnavailableError("clipboard", "")
	assert.Equal(t, "clipboard unavailable", bare.Error())
}

func TestErrorHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("copying handle: %w", NewUnavailableError("clipboard", ""))

	assert.True(t, IsUnavailable(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
}
