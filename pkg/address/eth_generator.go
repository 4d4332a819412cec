package address

import (
	"encoding/hex"
	"strings"

	"hdwallet-core/pkg/crypto_util"
)

// ETHGenerator derives EIP-55 checksummed Ethereum addresses.
type ETHGenerator struct{}

func NewETHGenerator() *ETHGenerator {
	return &ETHGenerator{}
}

// PubKeyToAddress converts an uncompressed public key (65 bytes with
// the 0x04 prefix, or the bare 64-byte point) to an EIP-55 address.
func (g *ETHGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	if len(pubKeyBytes) == 65 && pubKeyBytes[0] == 0x04 {
		pubKeyBytes = pubKeyBytes[1:]
	}

	// Address = last 20 bytes of Keccak256 over the raw point.
	hash := crypto_util.Keccak256(pubKeyBytes)
	addressHex := hex.EncodeToString(hash[12:])

	return "0x" + toChecksumAddress(addressHex), nil
}

// toChecksumAddress applies the EIP-55 mixed-case checksum: a hex digit
// is uppercased when the corresponding nibble of Keccak256(lowercase
// address) is >= 8.
func toChecksumAddress(address string) string {
	address = strings.ToLower(address)
	hexHash := hex.EncodeToString(crypto_util.Keccak256([]byte(address)))

	var sb strings.Builder
	for i := 0; i < len(address); i++ {
		if hexCharToInt(hexHash[i]) >= 8 {
			sb.WriteString(strings.ToUpper(string(address[i])))
		} else {
			sb.WriteByte(address[i])
		}
	}
	return sb.String()
}

func hexCharToInt(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return 0
}
