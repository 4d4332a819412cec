package bip39

import "errors"

var (
	// ErrInvalidBitWidth is returned by ConvertBits when either group
	// width is outside the supported 1..32 range.
	ErrInvalidBitWidth = errors.New("bit group width must be between 1 and 32")

	// ErrInvalidEntropyLength is returned when entropy is not a
	// multiple of 4 bytes between 16 and 32 bytes (128-256 bits).
	ErrInvalidEntropyLength = errors.New("entropy length must be a multiple of 4 bytes between 16 and 32")

	// ErrInvalidMnemonicLength is returned when a mnemonic's word count
	// is not a positive multiple of 3.
	ErrInvalidMnemonicLength = errors.New("mnemonic word count must be a positive multiple of 3")

	// ErrWordNotInList is returned when a mnemonic contains a word that
	// is absent from the word list in use.
	ErrWordNotInList = errors.New("mnemonic contains a word not in the word list")

	// ErrChecksumMismatch is returned by Entropy when the checksum bits
	// embedded in the word sequence do not match the payload.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

	// ErrInvalidWordList is returned when a supplied word list does not
	// contain exactly 2048 unique words.
	ErrInvalidWordList = errors.New("word list must contain exactly 2048 unique words")
)
