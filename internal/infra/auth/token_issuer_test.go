package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenIssuer_Issue(t *testing.T) {
	issuer := NewRandomTokenIssuer()

	token, err := issuer.Issue()
	require.NoError(t, err)

	// 20 bytes of entropy, hex-encoded.
	assert.Len(t, token, 40)

	decoded, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, tokenByteLength)
}

func TestRandomTokenIssuer_IssueIsUnique(t *testing.T) {
	issuer := NewRandomTokenIssuer()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := issuer.Issue()
		require.NoError(t, err)

		_, dup := seen[token]
		assert.False(t, dup, "issued token %q twice", token)
		seen[token] = struct{}{}
	}
}
