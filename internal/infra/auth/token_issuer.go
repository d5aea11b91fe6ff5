package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/believemanasseh/luciddreams/internal/domain/service"
	"github.com/believemanasseh/luciddreams/internal/errors"
)

// tokenByteLength is the entropy of an issued token: 20 random bytes,
// hex-encoded to a 40-character string.
const tokenByteLength = 20

// randomTokenIssuer mints opaque bearer tokens from crypto/rand.
type randomTokenIssuer struct{}

// NewRandomTokenIssuer is the constructor for randomTokenIssuer.
func NewRandomTokenIssuer() service.TokenIssuer {
	return &randomTokenIssuer{}
}

// Issue returns a fresh hex-encoded token. Collisions are not expected in
// practice; the store's unique constraint on the token column is the backstop.
func (i *randomTokenIssuer) Issue() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for auth token")
	}

	return hex.EncodeToString(buf), nil
}
