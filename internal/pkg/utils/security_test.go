package utils

import (
	"errors"
	"medisense-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash, "hash must not equal the plain password")
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	t.Run("Longer Than 72 Bytes", func(t *testing.T) {
		long := strings.Repeat("a", 128)
		hash, err := HashPassword(long)
		require.NoError(t, err)

		assert.True(t, CheckPasswordHash(long, hash))
		assert.False(t, CheckPasswordHash(long[:72], hash), "bytes past 72 must still count")
	})
}

func TestSessionJWT(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", 1)
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", 1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "other-secret")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", -1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "secret")
		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-jwt", "secret")
		assert.Error(t, err)
	})
}
