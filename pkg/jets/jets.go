// Package jets enumerates the built-in pure functions referenced by
// compiled programs. The catalog is closed: the compiler reaches for exactly
// these six, and the wider jet universe is out of scope here.
package jets

import "fmt"

// Node identifies a jet.
type Node uint8

const (
	// Adder32 adds two 32-bit words, producing a carry bit and a sum.
	Adder32 Node = iota
	// EqV32 compares two 32-bit words for equality, asserting on failure.
	EqV32
	// EqV256 compares two 256-bit words for equality, asserting on failure.
	EqV256
	// LessThanV32 orders two 32-bit words, asserting on failure.
	LessThanV32
	// SchnorrAssert verifies a Schnorr signature over a 32-byte key,
	// asserting on failure.
	SchnorrAssert
	// Sha256 hashes a 256-bit block into a 256-bit digest.
	Sha256
)

func (n Node) String() string {
	switch n {
	case Adder32:
		return "adder32"
	case EqV32:
		return "eqv32"
	case EqV256:
		return "eqv256"
	case LessThanV32:
		return "lessthanv32"
	case SchnorrAssert:
		return "schnorrassert"
	case Sha256:
		return "sha256"
	}
	return fmt.Sprintf("jet(%d)", uint8(n))
}
