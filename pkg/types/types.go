// Package types defines the semantic type algebra of the Bitcoin primitives
// and the value representation typed against it. Types and values are
// immutable trees; sub-trees may be shared between parents.
package types

import "fmt"

// Kind distinguishes the three structural forms of a semantic type.
type Kind uint8

const (
	KindUnit Kind = iota
	KindSum
	KindProd
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindSum:
		return "sum"
	case KindProd:
		return "product"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Type is a structural algebraic type: unit, a sum of two types, or a
// product of two types.
type Type struct {
	Kind        Kind
	Left, Right *Type
}

// One returns the unit type.
func One() *Type {
	return &Type{Kind: KindUnit}
}

// Sum returns the sum type l + r.
func Sum(l, r *Type) *Type {
	return &Type{Kind: KindSum, Left: l, Right: r}
}

// Prod returns the product type l * r.
func Prod(l, r *Type) *Type {
	return &Type{Kind: KindProd, Left: l, Right: r}
}

// Word returns the type of bits-wide unsigned words in the balanced
// product-of-bits form: a 1-bit word is 1+1, a wider word is the product of
// two half-width words. bits must be a power of two in [1, 256].
func Word(bits uint) *Type {
	switch {
	case bits == 1:
		return Sum(One(), One())
	case bits >= 2 && bits <= 256 && bits&(bits-1) == 0:
		half := Word(bits / 2)
		return Prod(half, half)
	}
	panic(fmt.Sprintf("types: invalid word width %d", bits))
}

// Equal reports whether a and b have the same structure.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindUnit {
		return true
	}
	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Name enumerates the closed set of semantic types declared by the Bitcoin
// extension nodes. The S-prefixed names are the sum-wrapped forms 1 + X used
// by accessors whose index may be out of range.
type Name uint8

const (
	NameOne Name = iota
	NameWord32
	NameWord64
	NameWord256
	NameWord256Word32
	NameSWord32
	NameSWord64
	NameSWord256
	NameSWord256Word32
)

func (n Name) String() string {
	switch n {
	case NameOne:
		return "1"
	case NameWord32:
		return "2^32"
	case NameWord64:
		return "2^64"
	case NameWord256:
		return "2^256"
	case NameWord256Word32:
		return "2^256*2^32"
	case NameSWord32:
		return "1+2^32"
	case NameSWord64:
		return "1+2^64"
	case NameSWord256:
		return "1+2^256"
	case NameSWord256Word32:
		return "1+2^256*2^32"
	}
	return fmt.Sprintf("name(%d)", uint8(n))
}

// Type expands the name into its structural shape. The sum-wrapped names
// carry the out-of-range case on the left arm.
func (n Name) Type() *Type {
	switch n {
	case NameOne:
		return One()
	case NameWord32:
		return Word(32)
	case NameWord64:
		return Word(64)
	case NameWord256:
		return Word(256)
	case NameWord256Word32:
		return Prod(Word(256), Word(32))
	case NameSWord32:
		return Sum(One(), Word(32))
	case NameSWord64:
		return Sum(One(), Word(64))
	case NameSWord256:
		return Sum(One(), Word(256))
	case NameSWord256Word32:
		return Sum(One(), Prod(Word(256), Word(32)))
	}
	panic(fmt.Sprintf("types: unknown type name %d", uint8(n)))
}
