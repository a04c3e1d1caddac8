package keys

import (
	"testing"

	"github.com/funvibe/simplicity/pkg/policy"
)

// The secp256k1 generator's x coordinate: a valid x-only key.
const generatorX = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

var _ policy.PublicKey = (*XOnly)(nil)

func TestParseHex(t *testing.T) {
	k, err := ParseHex(generatorX)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if k.String() != generatorX {
		t.Errorf("String() = %s, want %s", k.String(), generatorX)
	}
	raw := k.XOnly()
	if raw[0] != 0x79 || raw[31] != 0x98 {
		t.Errorf("XOnly() bytes do not round-trip")
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse(make([]byte, 31)); err == nil {
		t.Errorf("Parse accepted a 31-byte key")
	}
	if _, err := ParseHex("zz"); err == nil {
		t.Errorf("ParseHex accepted invalid hex")
	}
	// x = 0 is not a point on the curve.
	if _, err := Parse(make([]byte, 32)); err == nil {
		t.Errorf("Parse accepted an off-curve x")
	}
}

func TestCompilesAsPolicyKey(t *testing.T) {
	k, err := ParseHex(generatorX)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if _, err := policy.Compile(policy.Key(k)); err != nil {
		t.Fatalf("Compile(Key): %v", err)
	}
}
