package bip32

import (
	"fmt"
	"strconv"
	"strings"
)

// DerivePath derives the descendant key at a BIP-32 path such as
// "m/44'/0'/0'/0/1". Components are separated by '/'; an optional
// leading "m/" (or "M/") is accepted; a trailing ', h or H marks a
// component as hardened (0x80000000 is added to it). Derivation stops
// at the first failing component, including a hardened component
// requested from a public-only key.
func (k *ExtendedKey) DerivePath(path string) (*ExtendedKey, error) {
	indices, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	key := k
	for _, i := range indices {
		key, err = key.Derive(i)
		if err != nil {
			return nil, fmt.Errorf("derive index %d: %w", i, err)
		}
	}
	return key, nil
}

// parsePath converts a path string into child indices.
func parsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "m" || path == "M" {
		return nil, nil
	}
	if strings.HasPrefix(path, "m/") || strings.HasPrefix(path, "M/") {
		path = path[2:]
	}

	segments := strings.Split(path, "/")
	indices := make([]uint32, 0, len(segments))
	for _, segment := range segments {
		hardened := false
		switch {
		case strings.HasSuffix(segment, "'"),
			strings.HasSuffix(segment, "h"),
			strings.HasSuffix(segment, "H"):
			hardened = true
			segment = segment[:len(segment)-1]
		}

		val, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q", ErrInvalidPath, segment)
		}
		index := uint32(val)
		if hardened {
			if index >= HardenedKeyStart {
				return nil, fmt.Errorf("%w: hardened component %q out of range", ErrInvalidPath, segment)
			}
			index += HardenedKeyStart
		}
		indices = append(indices, index)
	}
	return indices, nil
}
