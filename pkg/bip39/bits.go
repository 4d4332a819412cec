package bip39

// ConvertBits repacks a bit stream grouped in fromBits-wide integers
// into toBits-wide groups. Packing is MSB-first across the whole
// sequence: the high bit of data[0] becomes the high bit of the first
// output group. When pad is true a trailing partial group is emitted
// left-shifted into a full group; when false it is discarded.
//
// The mnemonic codec drives this with byte groups (fromBits=8), single
// bits (1) and word indices (11).
func ConvertBits(data []uint32, fromBits, toBits uint32, pad bool) ([]uint32, error) {
	if fromBits < 1 || fromBits > 32 || toBits < 1 || toBits > 32 {
		return nil, ErrInvalidBitWidth
	}

	// The accumulator holds at most fromBits+toBits-1 (<= 63) bits.
	var acc uint64
	var bits uint32
	maxv := uint64(1)<<toBits - 1

	out := make([]uint32, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for _, v := range data {
		acc = acc<<fromBits | uint64(v)&(uint64(1)<<fromBits-1)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, uint32(acc>>bits&maxv))
		}
	}

	if pad && bits > 0 {
		out = append(out, uint32(acc<<(toBits-bits)&maxv))
	}

	return out, nil
}

// bytesToGroups widens a byte slice into the uint32 groups ConvertBits
// operates on.
func bytesToGroups(data []byte) []uint32 {
	groups := make([]uint32, len(data))
	for i, b := range data {
		groups[i] = uint32(b)
	}
	return groups
}

// groupsToBytes narrows 8-bit groups back into bytes.
func groupsToBytes(groups []uint32) []byte {
	data := make([]byte, len(groups))
	for i, g := range groups {
		data[i] = byte(g)
	}
	return data
}
