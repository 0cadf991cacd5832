package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dErrors "sumbandila/pkg/domain-errors"
)

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	t.Run("hash is salted and verifies", func(t *testing.T) {
		first, err := h.Hash("correct horse")
		require.NoError(t, err)
		second, err := h.Hash("correct horse")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.NotContains(t, first, "correct horse")
		assert.NoError(t, h.Verify("correct horse", first))
		assert.NoError(t, h.Verify("correct horse", second))
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		hash, err := h.Hash("correct horse")
		require.NoError(t, err)

		err = h.Verify("battery staple", hash)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("overlong secret is unauthorized on verify", func(t *testing.T) {
		hash, err := h.Hash("correct horse")
		require.NoError(t, err)

		err = h.Verify(strings.Repeat("x", 100), hash)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("malformed hash is internal", func(t *testing.T) {
		err := h.Verify("anything", "not-a-bcrypt-hash")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("empty secret rejected", func(t *testing.T) {
		_, err := h.Hash("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("overlong secret rejected", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("x", 80))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("missing identifier always fails", func(t *testing.T) {
		err := h.VerifyMissing(dummySecret)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestNewHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
}
