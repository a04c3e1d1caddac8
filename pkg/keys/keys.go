// Package keys provides a BIP-340 x-only public key that satisfies the
// compiler's key-material capability. The compiler itself only depends on
// the capability; this adapter is a convenience for callers holding real
// key bytes.
package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// XOnly is a validated 32-byte x-only public key.
type XOnly struct {
	raw [32]byte
}

// Parse validates b as the x-only serialization of a point on the curve.
func Parse(b []byte) (*XOnly, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("keys: x-only key must be 32 bytes, got %d", len(b))
	}
	if _, err := schnorr.ParsePubKey(b); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	var k XOnly
	copy(k.raw[:], b)
	return &k, nil
}

// ParseHex validates a hex-encoded x-only key.
func ParseHex(s string) (*XOnly, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return Parse(b)
}

// XOnly returns the 32-byte serialization.
func (k *XOnly) XOnly() [32]byte {
	return k.raw
}

// String returns the lower-case hex encoding.
func (k *XOnly) String() string {
	return hex.EncodeToString(k.raw[:])
}
