package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("secret1", "not-a-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateConversationID(t *testing.T) {
	id, err := GenerateConversationID()
	require.NoError(t, err)
	assert.Len(t, id, 32)
}
