package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"school_backend/internal/shared/record"
)

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("hash matches plaintext", func(t *testing.T) {
		t.Parallel()
		hashed, err := Hash("password123", bcrypt.MinCost)

		require.NoError(t, err)
		assert.NotEqual(t, "password123", hashed)
		assert.True(t, strings.HasPrefix(hashed, "$2a$"))
		assert.True(t, Matches(hashed, "password123"))
		assert.False(t, Matches(hashed, "password124"))
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		hashed, err := Hash("short", bcrypt.MinCost)

		assert.Empty(t, hashed)
		assert.ErrorIs(t, err, ErrTooShort)
		assert.ErrorIs(t, err, record.ErrInvalidState)
		assert.EqualError(t, err, "password must be at least 8 characters long")
	})
}

func TestBurn(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Burn("anything") })
}
