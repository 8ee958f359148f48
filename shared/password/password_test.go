package password_test

import (
	"strings"
	"testing"

	"beautyhub/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secret-123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NoError(t, password.Verify("secret-123", hash))
	assert.ErrorIs(t, password.Verify("secret-124", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)

	again, err := password.Hash("secret-123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestVerify_NoStoredHash(t *testing.T) {
	assert.ErrorIs(t, password.Verify("anything", ""), password.ErrInvalidPassword)
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("secret-123", "not-a-bcrypt-hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrInvalidPassword)
}

func TestNeedsRehash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("secret-123"), bcrypt.MinCost)
	require.NoError(t, err)

	strong, err := password.Hash("secret-123")
	require.NoError(t, err)

	assert.True(t, password.NeedsRehash(string(weak)))
	assert.False(t, password.NeedsRehash(strong))
	assert.False(t, password.NeedsRehash("garbage"))
}
