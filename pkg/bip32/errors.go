package bip32

import "errors"

var (
	// ErrInvalidSeed is returned when the master key derived from a
	// seed is zero or not below the curve order.
	ErrInvalidSeed = errors.New("seed produces an invalid master key")

	// ErrInvalidSeedLen is returned by GenerateSeed for lengths outside
	// the 16..64 byte range.
	ErrInvalidSeedLen = errors.New("seed length must be between 16 and 64 bytes")

	// ErrDeriveHardFromPublic is returned when a hardened child (index
	// >= 0x80000000) is requested from a public extended key.
	ErrDeriveHardFromPublic = errors.New("cannot derive a hardened key from a public key")

	// ErrDeriveBeyondMaxDepth is returned when deriving from a key that
	// is already at depth 255.
	ErrDeriveBeyondMaxDepth = errors.New("cannot derive a key with more than 255 indices in its path")

	// ErrInvalidChild is returned when derivation at an index yields a
	// degenerate key (intermediate scalar >= N, zero child scalar, or
	// the point at infinity). The caller may move on to the next index.
	ErrInvalidChild = errors.New("the extended key at this index is invalid")

	// ErrNotPrivExtKey is returned when private key material is
	// requested from a public extended key.
	ErrNotPrivExtKey = errors.New("unable to create private keys from a public extended key")

	// ErrInvalidKeyLen is returned when a decoded serialized key is not
	// exactly 78 bytes.
	ErrInvalidKeyLen = errors.New("the provided serialized extended key length is invalid")

	// ErrBadChecksum is returned when the checksum embedded in a
	// serialized extended key does not match its payload.
	ErrBadChecksum = errors.New("bad extended key checksum")

	// ErrUnknownVersion is returned when the 4-byte version prefix of a
	// serialized key matches neither the private nor the public ID of
	// the network.
	ErrUnknownVersion = errors.New("unknown extended key version")

	// ErrInvalidPath is returned for malformed derivation path strings.
	ErrInvalidPath = errors.New("invalid derivation path")
)
