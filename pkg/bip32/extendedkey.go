// Package bip32 implements BIP-32 hierarchical deterministic extended
// keys: master key generation from a seed, hardened and non-hardened
// child derivation, neutering to the public counterpart, and the
// canonical Base58Check serialization (xprv/xpub strings).
package bip32

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"

	"hdwallet-core/pkg/crypto_util"
	"hdwallet-core/pkg/safe_random"
)

const (
	// HardenedKeyStart is the first hardened child index. Hardened
	// children can only be derived from private extended keys.
	HardenedKeyStart uint32 = 0x80000000

	// MinSeedBytes and MaxSeedBytes bound the seed lengths produced by
	// GenerateSeed (128 to 512 bits).
	MinSeedBytes = 16
	MaxSeedBytes = 64

	// RecommendedSeedLen is the seed length GenerateSeed callers
	// should normally use (256 bits).
	RecommendedSeedLen = 32

	// serializedKeyLen is version(4) + depth(1) + parent fingerprint(4)
	// + child index(4) + chain code(32) + key data(33).
	serializedKeyLen = 78

	maxDepth = 255
)

// masterHMACKey keys the HMAC-SHA512 that turns a seed into the master
// key and chain code.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedKey holds either a private scalar or a public point together
// with the chain code and positional metadata needed for further
// derivation. Keys are immutable: derivation returns new keys and the
// compressed public key is computed at construction, so an ExtendedKey
// may be shared across goroutines without locking.
type ExtendedKey struct {
	key       []byte // 32-byte scalar (private) or 33-byte compressed point (public)
	pubKey    []byte // compressed public key, always populated
	chainCode []byte
	depth     uint8
	parentFP  []byte
	childNum  uint32
	version   []byte
	isPrivate bool
}

// newExtendedKey assembles an ExtendedKey from raw parts. The slices
// are copied so callers cannot alias internal state.
func newExtendedKey(version, key, chainCode, parentFP []byte, depth uint8,
	childNum uint32, isPrivate bool) *ExtendedKey {

	k := &ExtendedKey{
		key:       append([]byte(nil), key...),
		chainCode: append([]byte(nil), chainCode...),
		depth:     depth,
		parentFP:  append([]byte(nil), parentFP...),
		childNum:  childNum,
		version:   append([]byte(nil), version...),
		isPrivate: isPrivate,
	}
	if isPrivate {
		_, pubKey := btcec.PrivKeyFromBytes(k.key)
		k.pubKey = pubKey.SerializeCompressed()
	} else {
		k.pubKey = k.key
	}
	return k
}

// NewMaster creates the master extended private key for a seed:
// I = HMAC-SHA512(key="Bitcoin seed", data=seed), with IL the master
// scalar and IR the master chain code. ErrInvalidSeed is returned when
// IL is zero or not below the curve order.
func NewMaster(seed []byte, net *chaincfg.Params) (*ExtendedKey, error) {
	hmac512 := hmac.New(sha512.New, masterHMACKey)
	hmac512.Write(seed)
	lr := hmac512.Sum(nil)
	secretKey, chainCode := lr[:len(lr)/2], lr[len(lr)/2:]

	secretNum := new(big.Int).SetBytes(secretKey)
	if secretNum.Sign() == 0 || secretNum.Cmp(btcec.S256().N) >= 0 {
		return nil, ErrInvalidSeed
	}

	parentFP := []byte{0x00, 0x00, 0x00, 0x00}
	return newExtendedKey(net.HDPrivateKeyID[:], secretKey, chainCode,
		parentFP, 0, 0, true), nil
}

// GenerateSeed returns a cryptographically secure random seed of the
// given length in bytes, which must be between 16 and 64.
func GenerateSeed(length uint8) ([]byte, error) {
	if length < MinSeedBytes || length > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}
	return safe_random.GenerateRandomBytes(int(length))
}

// Derive returns the child extended key at index i.
//
//	private parent -> private child (hardened and non-hardened)
//	public parent  -> public child  (non-hardened only)
//
// ErrInvalidChild is returned for the astronomically unlikely
// degenerate cases (intermediate scalar >= N, zero child scalar, point
// at infinity); callers that need BIP-32's skip-to-next-index behavior
// can treat it as a signal to retry with i+1.
func (k *ExtendedKey) Derive(i uint32) (*ExtendedKey, error) {
	if k.depth == maxDepth {
		return nil, ErrDeriveBeyondMaxDepth
	}

	isChildHardened := i >= HardenedKeyStart
	if !k.isPrivate && isChildHardened {
		return nil, ErrDeriveHardFromPublic
	}

	// Hardened:     0x00 || ser256(parentKey) || ser32(i)
	// Non-hardened: serP(parentPubKey) || ser32(i)
	keyLen := 33
	data := make([]byte, keyLen+4)
	if isChildHardened {
		copy(data[1:], k.key)
	} else {
		copy(data, k.pubKey)
	}
	binary.BigEndian.PutUint32(data[keyLen:], i)

	hmac512 := hmac.New(sha512.New, k.chainCode)
	hmac512.Write(data)
	ilr := hmac512.Sum(nil)
	il, childChainCode := ilr[:len(ilr)/2], ilr[len(ilr)/2:]

	ilNum := new(big.Int).SetBytes(il)
	if ilNum.Cmp(btcec.S256().N) >= 0 {
		return nil, ErrInvalidChild
	}

	var childKey []byte
	isPrivate := false
	if k.isPrivate {
		// childKey = (parse256(IL) + parentKey) mod N
		keyNum := new(big.Int).SetBytes(k.key)
		ilNum.Add(ilNum, keyNum)
		ilNum.Mod(ilNum, btcec.S256().N)
		if ilNum.Sign() == 0 {
			return nil, ErrInvalidChild
		}
		childKey = ilNum.FillBytes(make([]byte, 32))
		isPrivate = true
	} else {
		// childKey = serP(parse256(IL)*G + parentPubKey)
		ilx, ily := btcec.S256().ScalarBaseMult(il)
		pubKey, err := btcec.ParsePubKey(k.key)
		if err != nil {
			return nil, err
		}
		parentPub := pubKey.ToECDSA()
		childX, childY := btcec.S256().Add(ilx, ily, parentPub.X, parentPub.Y)
		if childX.Sign() == 0 && childY.Sign() == 0 {
			return nil, ErrInvalidChild
		}
		childKey = serializeCompressed(childX, childY)
	}

	parentFP := crypto_util.Hash160(k.pubKey)[:4]
	return newExtendedKey(k.version, childKey, childChainCode, parentFP,
		k.depth+1, i, isPrivate), nil
}

// Neuter reduces a private extended key to its public counterpart:
// same chain code and positional metadata, key material replaced by the
// public point. The reduction is one-way. Neutering an already public
// key returns it unchanged.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	if !k.isPrivate {
		return k, nil
	}

	version, err := chaincfg.HDPrivateKeyToPublicKeyID(k.version)
	if err != nil {
		return nil, err
	}
	return newExtendedKey(version, k.pubKey, k.chainCode, k.parentFP,
		k.depth, k.childNum, false), nil
}

// String returns the Base58Check text form: the 78-byte payload
// version || depth || parentFP || childIndex || chainCode || keyData
// followed by a 4-byte double-SHA256 checksum, Base58 encoded.
func (k *ExtendedKey) String() string {
	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.childNum)

	serializedBytes := make([]byte, 0, serializedKeyLen+4)
	serializedBytes = append(serializedBytes, k.version...)
	serializedBytes = append(serializedBytes, k.depth)
	serializedBytes = append(serializedBytes, k.parentFP...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.chainCode...)
	if k.isPrivate {
		serializedBytes = append(serializedBytes, 0x00)
		serializedBytes = append(serializedBytes, k.key...)
	} else {
		serializedBytes = append(serializedBytes, k.pubKey...)
	}

	serializedBytes = append(serializedBytes, crypto_util.Checksum4(serializedBytes)...)
	return base58.Encode(serializedBytes)
}

// NewKeyFromString is the inverse of String. It validates the embedded
// checksum (ErrBadChecksum), requires a 78-byte payload
// (ErrInvalidKeyLen) and dispatches on the version prefix against the
// network's private and public IDs (ErrUnknownVersion).
func NewKeyFromString(key string, net *chaincfg.Params) (*ExtendedKey, error) {
	decoded := base58.Decode(key)
	if len(decoded) < 4 {
		return nil, ErrInvalidKeyLen
	}

	payload := decoded[:len(decoded)-4]
	checkSum := decoded[len(decoded)-4:]
	if !bytes.Equal(checkSum, crypto_util.Checksum4(payload)) {
		return nil, ErrBadChecksum
	}
	if len(payload) != serializedKeyLen {
		return nil, ErrInvalidKeyLen
	}

	version := payload[:4]
	depth := payload[4]
	parentFP := payload[5:9]
	childNum := binary.BigEndian.Uint32(payload[9:13])
	chainCode := payload[13:45]
	keyData := payload[45:78]

	switch {
	case bytes.Equal(version, net.HDPrivateKeyID[:]):
		// Private key data is 0x00 || ser256(key).
		if keyData[0] != 0x00 {
			return nil, ErrInvalidKeyLen
		}
		return newExtendedKey(version, keyData[1:], chainCode, parentFP,
			depth, childNum, true), nil

	case bytes.Equal(version, net.HDPublicKeyID[:]):
		// Reject key data that is not a valid point on the curve.
		if _, err := btcec.ParsePubKey(keyData); err != nil {
			return nil, err
		}
		return newExtendedKey(version, keyData, chainCode, parentFP,
			depth, childNum, false), nil

	default:
		return nil, ErrUnknownVersion
	}
}

// ID returns the key identifier: HASH160 of the compressed public key.
func (k *ExtendedKey) ID() []byte {
	return crypto_util.Hash160(k.pubKey)
}

// Fingerprint returns the first 4 bytes of ID, the value embedded in
// children as their parent fingerprint.
func (k *ExtendedKey) Fingerprint() []byte {
	return k.ID()[:4]
}

// ParentFingerprint returns the fingerprint of this key's parent
// (0x00000000 for a master key).
func (k *ExtendedKey) ParentFingerprint() []byte {
	return append([]byte(nil), k.parentFP...)
}

// Address returns the P2PKH address for the key's public point.
func (k *ExtendedKey) Address(net *chaincfg.Params) (*btcutil.AddressPubKeyHash, error) {
	return btcutil.NewAddressPubKeyHash(k.ID(), net)
}

// WIF exports the private key in Wallet Import Format with the
// compressed-public-key marker byte. ErrNotPrivExtKey is returned for
// public extended keys.
func (k *ExtendedKey) WIF(net *chaincfg.Params) (string, error) {
	privKey, err := k.ECPrivKey()
	if err != nil {
		return "", err
	}
	wif, err := btcutil.NewWIF(privKey, net, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// ECPubKey returns the key material as a btcec public key.
func (k *ExtendedKey) ECPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(k.pubKey)
}

// ECPrivKey returns the key material as a btcec private key, or
// ErrNotPrivExtKey for a public extended key.
func (k *ExtendedKey) ECPrivKey() (*btcec.PrivateKey, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivExtKey
	}
	privKey, _ := btcec.PrivKeyFromBytes(k.key)
	return privKey, nil
}

// IsPrivate reports whether the key holds a private scalar.
func (k *ExtendedKey) IsPrivate() bool {
	return k.isPrivate
}

// Depth returns how many derivation steps separate this key from the
// master key.
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ChildIndex returns the index this key was derived at (0 for a master
// key). Indices >= HardenedKeyStart are hardened.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childNum
}

// ChainCode returns a copy of the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	return append([]byte(nil), k.chainCode...)
}

// serializeCompressed encodes an affine point as 33 bytes: an even/odd
// Y parity prefix followed by the 32-byte big-endian X coordinate.
func serializeCompressed(x, y *big.Int) []byte {
	key := make([]byte, 33)
	key[0] = 0x02
	if y.Bit(0) == 1 {
		key[0] = 0x03
	}
	x.FillBytes(key[1:])
	return key
}
