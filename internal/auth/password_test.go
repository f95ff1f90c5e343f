package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("plaintext-secret")
	require.NoError(t, err)

	assert.NotEqual(t, "plaintext-secret", hash)
	assert.NoError(t, ComparePassword(hash, "plaintext-secret"))
	assert.Error(t, ComparePassword(hash, "wrong-secret"))
}
