package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	require.NotEqual(t, "s3cret", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$"))

	// Salted: hashing the same input twice yields different digests.
	again, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, hash, again)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	require.True(t, CheckPassword(hash, "s3cret"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("not-a-hash", "s3cret"))
}
