package safe_random

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"
)

func TestGenerateRandomBytes(t *testing.T) {
	n := 32
	b, err := GenerateRandomBytes(n)
	if err != nil {
		t.Fatalf("GenerateRandomBytes: %v", err)
	}
	if len(b) != n {
		t.Errorf("got %d bytes, want %d", len(b), n)
	}

	// All zeros from the CSPRNG would mean something is badly broken.
	if bytes.Equal(b, make([]byte, n)) {
		t.Error("GenerateRandomBytes returned all zeros")
	}
}

func TestGenerateRandomHexString(t *testing.T) {
	n := 16
	s, err := GenerateRandomHexString(n)
	if err != nil {
		t.Fatalf("GenerateRandomHexString: %v", err)
	}

	decoded, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("result is not valid hex: %v", err)
	}
	if len(decoded) != n {
		t.Errorf("decoded length = %d, want %d", len(decoded), n)
	}
}

func TestGenerateRandomInt(t *testing.T) {
	max := big.NewInt(100)
	for i := 0; i < 32; i++ {
		v, err := GenerateRandomInt(max)
		if err != nil {
			t.Fatalf("GenerateRandomInt: %v", err)
		}
		if v.Sign() < 0 || v.Cmp(max) >= 0 {
			t.Errorf("value %v outside [0, %v)", v, max)
		}
	}

	if _, err := GenerateRandomInt(big.NewInt(0)); err == nil {
		t.Error("expected error for non-positive max")
	}
}

// Reader can be swapped for a deterministic source in tests.
func TestReaderInjection(t *testing.T) {
	orig := Reader
	defer func() { Reader = orig }()

	Reader = bytes.NewReader([]byte{1, 2, 3, 4})

	b, err := GenerateRandomBytes(4)
	if err != nil {
		t.Fatalf("GenerateRandomBytes: %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Errorf("got %v, want the injected bytes", b)
	}

	// The injected reader is exhausted; a short read must error.
	if _, err := GenerateRandomBytes(4); err == nil {
		t.Error("expected error on short read")
	}
}
