package types

import (
	"fmt"

	"github.com/funvibe/simplicity/pkg/bitio"
)

// ValueKind distinguishes the four structural forms of a value.
type ValueKind uint8

const (
	ValueUnit ValueKind = iota
	ValueSumL
	ValueSumR
	ValueProd
)

func (k ValueKind) String() string {
	switch k {
	case ValueUnit:
		return "unit"
	case ValueSumL:
		return "left"
	case ValueSumR:
		return "right"
	case ValueProd:
		return "product"
	}
	return fmt.Sprintf("valuekind(%d)", uint8(k))
}

// Value is a content tree whose shape mirrors the semantic type it was
// constructed against: sums branch into a left or right injection, products
// pair two values, unit is a leaf. Values are never mutated.
type Value struct {
	Kind        ValueKind
	Left, Right *Value // injections use Left only; products use both
}

// UnitValue returns the unit value.
func UnitValue() *Value {
	return &Value{Kind: ValueUnit}
}

// SumL returns the left injection of v.
func SumL(v *Value) *Value {
	return &Value{Kind: ValueSumL, Left: v}
}

// SumR returns the right injection of v.
func SumR(v *Value) *Value {
	return &Value{Kind: ValueSumR, Left: v}
}

// ProdValue returns the pair (l, r).
func ProdValue(l, r *Value) *Value {
	return &Value{Kind: ValueProd, Left: l, Right: r}
}

// word encodes the low bits of v as a balanced bit-tree value.
func word(v uint64, bits uint) *Value {
	if bits == 1 {
		if v&1 == 1 {
			return SumR(UnitValue())
		}
		return SumL(UnitValue())
	}
	half := bits / 2
	return ProdValue(word(v>>half, half), word(v&(1<<half-1), half))
}

// U1 returns the low bit of n as a 1-bit word value: 0 is the left
// injection of unit, 1 the right.
func U1(n uint8) *Value { return word(uint64(n), 1) }

// U2 returns the low 2 bits of n as a 2-bit word value.
func U2(n uint8) *Value { return word(uint64(n), 2) }

// U4 returns the low 4 bits of n as a 4-bit word value.
func U4(n uint8) *Value { return word(uint64(n), 4) }

// U8 returns n as an 8-bit word value.
func U8(n uint8) *Value { return word(uint64(n), 8) }

// U16 returns n as a 16-bit word value.
func U16(n uint16) *Value { return word(uint64(n), 16) }

// U32 returns n as a 32-bit word value.
func U32(n uint32) *Value { return word(uint64(n), 32) }

// U64 returns n as a 64-bit word value.
func U64(n uint64) *Value { return word(n, 64) }

// FromBits decodes a value of type ty from r: a sum consumes one selector
// bit and decodes the chosen arm, a product decodes its left then its right
// component, unit consumes nothing. Fails with the reader's end-of-stream
// error if the source is exhausted.
func FromBits(r bitio.Reader, ty *Type) (*Value, error) {
	switch ty.Kind {
	case KindUnit:
		return UnitValue(), nil
	case KindSum:
		b, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if b {
			v, err := FromBits(r, ty.Right)
			if err != nil {
				return nil, err
			}
			return SumR(v), nil
		}
		v, err := FromBits(r, ty.Left)
		if err != nil {
			return nil, err
		}
		return SumL(v), nil
	case KindProd:
		l, err := FromBits(r, ty.Left)
		if err != nil {
			return nil, err
		}
		rv, err := FromBits(r, ty.Right)
		if err != nil {
			return nil, err
		}
		return ProdValue(l, rv), nil
	}
	panic(fmt.Sprintf("types: unknown type kind %d", uint8(ty.Kind)))
}

// Type reports the implied shape of v. The untaken arm of a sum cannot be
// recovered from the value alone and is reported as unit.
func (v *Value) Type() *Type {
	switch v.Kind {
	case ValueUnit:
		return One()
	case ValueSumL:
		return Sum(v.Left.Type(), One())
	case ValueSumR:
		return Sum(One(), v.Left.Type())
	case ValueProd:
		return Prod(v.Left.Type(), v.Right.Type())
	}
	panic(fmt.Sprintf("types: unknown value kind %d", uint8(v.Kind)))
}

// ShapeError reports a value whose structure does not match the type it was
// checked against.
type ShapeError struct {
	Want Kind
	Got  ValueKind
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("types: value shape %s does not match type shape %s", e.Got, e.Want)
}

// Conform checks that v is structurally a value of ty.
func Conform(v *Value, ty *Type) error {
	switch ty.Kind {
	case KindUnit:
		if v.Kind != ValueUnit {
			return &ShapeError{Want: ty.Kind, Got: v.Kind}
		}
		return nil
	case KindSum:
		switch v.Kind {
		case ValueSumL:
			return Conform(v.Left, ty.Left)
		case ValueSumR:
			return Conform(v.Left, ty.Right)
		}
		return &ShapeError{Want: ty.Kind, Got: v.Kind}
	case KindProd:
		if v.Kind != ValueProd {
			return &ShapeError{Want: ty.Kind, Got: v.Kind}
		}
		if err := Conform(v.Left, ty.Left); err != nil {
			return err
		}
		return Conform(v.Right, ty.Right)
	}
	panic(fmt.Sprintf("types: unknown type kind %d", uint8(ty.Kind)))
}
