package crypto_util

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Hash160 computes RIPEMD160(SHA256(data)), the digest behind Bitcoin
// key IDs, fingerprints and P2PKH addresses.
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Checksum4 returns the 4-byte double-SHA256 checksum appended to
// Base58Check payloads.
func Checksum4(data []byte) []byte {
	return DoubleSHA256(data)[:4]
}

// Keccak256 computes the legacy Keccak-256 digest used by Ethereum
// addresses. Note this is not the finalized SHA3-256.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
