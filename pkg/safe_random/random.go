// Package safe_random wraps the system CSPRNG. It is the only source
// of non-determinism in this module; everything downstream of the
// entropy it produces is a pure function.
package safe_random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

// Reader is the shared cryptographically secure random source,
// crypto/rand.Reader by default. Tests may swap it for a deterministic
// reader.
var Reader io.Reader = rand.Reader

// GenerateRandomBytes returns n cryptographically secure random bytes.
// It fails rather than returning a short read.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// GenerateRandomHexString returns n random bytes hex encoded; the
// resulting string is 2n characters long.
func GenerateRandomHexString(n int) (string, error) {
	b, err := GenerateRandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateRandomInt returns a uniform random value in [0, max).
func GenerateRandomInt(max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("max must be positive")
	}
	return rand.Int(Reader, max)
}
