// Package bip39 implements the BIP-39 mnemonic code: entropy to
// checksummed word sequences, word sequences back to entropy, and the
// PBKDF2 seed derivation used to feed hierarchical deterministic
// wallets.
package bip39

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"hdwallet-core/pkg/safe_random"
)

// seedIterations and seedLength are fixed by BIP-39.
const (
	seedIterations = 2048
	seedLength     = 64
	seedSaltPrefix = "mnemonic"
)

// Mnemonic is an ordered sequence of words from a WordList. The
// checksum is carried by the word sequence itself; a Mnemonic is
// treated as immutable once constructed.
type Mnemonic []string

// FromEntropy encodes entropy bytes as a mnemonic using wl (nil picks
// the English default). Entropy must be 16, 20, 24, 28 or 32 bytes,
// giving 12/15/18/21/24 words.
func FromEntropy(entropy []byte, wl *WordList) (Mnemonic, error) {
	if len(entropy)%4 != 0 || len(entropy) < 16 || len(entropy) > 32 {
		return nil, ErrInvalidEntropyLength
	}
	wl = resolveWordList(wl)

	// Checksum is the first ENT/32 bits of SHA256(entropy), appended
	// to the entropy bits before regrouping into 11-bit word indices.
	entBits, err := ConvertBits(bytesToGroups(entropy), 8, 1, false)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(entropy)
	hashBits, err := ConvertBits(bytesToGroups(hash[:]), 8, 1, false)
	if err != nil {
		return nil, err
	}
	full := append(entBits, hashBits[:len(entropy)*8/32]...)

	indices, err := ConvertBits(full, 1, 11, false)
	if err != nil {
		return nil, err
	}

	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i], _ = wl.Word(int(idx))
	}
	return Mnemonic(words), nil
}

// NewMnemonic generates a random mnemonic. bitSize is the entropy size
// in bits: 128, 160, 192, 224 or 256.
func NewMnemonic(bitSize int, wl *WordList) (Mnemonic, error) {
	if bitSize%32 != 0 || bitSize < 128 || bitSize > 256 {
		return nil, ErrInvalidEntropyLength
	}
	entropy, err := safe_random.GenerateRandomBytes(bitSize / 8)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	return FromEntropy(entropy, wl)
}

// FromString splits a space-delimited phrase into a Mnemonic.
func FromString(phrase string) Mnemonic {
	return Mnemonic(strings.Fields(phrase))
}

// String joins the words with single spaces.
func (m Mnemonic) String() string {
	return strings.Join(m, " ")
}

// Check reports whether the mnemonic passes checksum verification
// against wl (nil picks the English default). A word count that is not
// a positive multiple of 3 or a failed checksum yields false without an
// error; a word missing from the list is a structural failure and
// returns ErrWordNotInList.
func (m Mnemonic) Check(wl *WordList) (bool, error) {
	if len(m) == 0 || len(m)%3 != 0 {
		return false, nil
	}
	_, ok, err := m.split(wl)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Entropy is the inverse of FromEntropy: it recovers the raw entropy
// bytes, failing with ErrChecksumMismatch when the embedded checksum
// does not verify.
func (m Mnemonic) Entropy(wl *WordList) ([]byte, error) {
	if len(m) == 0 || len(m)%3 != 0 {
		return nil, ErrInvalidMnemonicLength
	}
	payload, ok, err := m.split(wl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// ToSeed derives the 64-byte wallet seed from the mnemonic and an
// optional passphrase: PBKDF2-HMAC-SHA512 over the space-joined words
// with salt "mnemonic"+passphrase and 2048 iterations.
//
// Words are used exactly as given, without NFKD normalization.
func (m Mnemonic) ToSeed(passphrase string) []byte {
	salt := []byte(seedSaltPrefix + passphrase)
	return pbkdf2.Key([]byte(m.String()), salt, seedIterations, seedLength, sha512.New)
}

// split maps the words to indices, separates payload bits from
// checksum bits at ENT = 32*wordCount/33 bits, and reports whether the
// recomputed SHA256 checksum prefix matches the extracted bits.
func (m Mnemonic) split(wl *WordList) (payload []byte, ok bool, err error) {
	wl = resolveWordList(wl)

	indices := make([]uint32, len(m))
	for i, w := range m {
		idx, found := wl.Index(w)
		if !found {
			return nil, false, fmt.Errorf("word %q: %w", w, ErrWordNotInList)
		}
		indices[i] = uint32(idx)
	}

	bits, err := ConvertBits(indices, 11, 1, false)
	if err != nil {
		return nil, false, err
	}
	entBits := 32 * len(bits) / 33
	payloadBits, checksumBits := bits[:entBits], bits[entBits:]

	payloadGroups, err := ConvertBits(payloadBits, 1, 8, false)
	if err != nil {
		return nil, false, err
	}
	payload = groupsToBytes(payloadGroups)

	hash := sha256.Sum256(payload)
	hashBits, err := ConvertBits(bytesToGroups(hash[:]), 8, 1, false)
	if err != nil {
		return nil, false, err
	}
	for i := range checksumBits {
		if hashBits[i] != checksumBits[i] {
			return payload, false, nil
		}
	}
	return payload, true, nil
}
