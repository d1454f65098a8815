package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("wrong", hash))
	assert.False(t, h.Verify("s3cret", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestRandomTokenGenerator(t *testing.T) {
	g := NewRandomTokenGenerator(0)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := g.Generate()
		require.NoError(t, err)
		assert.Len(t, tok, 2*defaultTokenBytes)
		_, dup := seen[tok]
		assert.False(t, dup, "tokens must not repeat")
		seen[tok] = struct{}{}
	}

	short, err := NewRandomTokenGenerator(4).Generate()
	require.NoError(t, err)
	assert.Len(t, short, 8)
}
