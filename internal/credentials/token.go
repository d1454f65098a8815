package credentials

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultTokenBytes = 32

// RandomTokenGenerator produces hex-encoded tokens from crypto/rand.
type RandomTokenGenerator struct {
	size int
}

// NewRandomTokenGenerator returns a generator of size random bytes per
// token. Non-positive sizes use 32 bytes.
func NewRandomTokenGenerator(size int) *RandomTokenGenerator {
	if size <= 0 {
		size = defaultTokenBytes
	}
	return &RandomTokenGenerator{size: size}
}

// Generate returns a new token.
func (g *RandomTokenGenerator) Generate() (string, error) {
	b := make([]byte, g.size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
