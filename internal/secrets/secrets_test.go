package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	secret, err := Generate()
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	hash, err := Hash(secret)
	require.NoError(t, err)
	require.NotEqual(t, secret, hash)

	assert.NoError(t, Verify(secret, hash))
	assert.ErrorIs(t, Verify("wrong-secret", hash), ErrMismatch)
}

func TestHashEmptySecret(t *testing.T) {
	_, err := Hash("")
	assert.Error(t, err)
}
