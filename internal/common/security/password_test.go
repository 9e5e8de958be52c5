package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_Randomized(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// Each call salts independently, yet both digests verify.
	require.NotEqual(t, first, second)
	require.True(t, CheckPasswordHash("secret1", first))
	require.True(t, CheckPasswordHash("secret1", second))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	require.False(t, CheckPasswordHash("secret2", hash))
}

func TestCheckPasswordHash_MalformedDigestFailsClosed(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$broken"} {
		require.False(t, CheckPasswordHash("secret1", digest))
	}
}
