// Package term defines the combinator term model: the program
// representation shared by primitive nodes and compiled policies. It is a
// vocabulary, not a service: construction is the only operation, and the
// type-correctness of every composition is the builder's obligation.
package term

import (
	"errors"
	"fmt"

	"github.com/funvibe/simplicity/pkg/bitio"
	"github.com/funvibe/simplicity/pkg/jets"
)

// ErrNotExtension is returned when an encoding hook is invoked on a term
// that is not an extension leaf.
var ErrNotExtension = errors.New("term: not an extension leaf")

// Kind enumerates combinator node kinds.
type Kind uint8

const (
	KindUnit Kind = iota
	KindInjL
	KindInjR
	KindPair
	KindComp
	KindCase
	KindDrop
	KindWitness
	KindJet
	KindExt
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindInjL:
		return "injl"
	case KindInjR:
		return "injr"
	case KindPair:
		return "pair"
	case KindComp:
		return "comp"
	case KindCase:
		return "case"
	case KindDrop:
		return "drop"
	case KindWitness:
		return "witness"
	case KindJet:
		return "jet"
	case KindExt:
		return "ext"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Extension is the encoding hook an extension-node catalog provides: an
// extension leaf writes its codeword through the node's own encoder.
type Extension interface {
	Encode(w bitio.Writer) (int, error)
}

// Term is an immutable combinator expression, generic over the witness
// payload W and the extension-node catalog X. Sub-terms are shared
// pointers: the same term may be linked into any number of parents, which
// is safe because terms are never mutated after construction.
type Term[W any, X Extension] struct {
	Kind        Kind
	Left, Right *Term[W, X]
	Witness     W         // set when Kind is KindWitness
	Jet         jets.Node // set when Kind is KindJet
	Node        X         // set when Kind is KindExt
}

// Unit returns the unit combinator, which ignores its input and produces
// the unit value.
func Unit[W any, X Extension]() *Term[W, X] {
	return &Term[W, X]{Kind: KindUnit}
}

// InjL wraps t's output in a left injection.
func InjL[W any, X Extension](t *Term[W, X]) *Term[W, X] {
	return &Term[W, X]{Kind: KindInjL, Left: t}
}

// InjR wraps t's output in a right injection.
func InjR[W any, X Extension](t *Term[W, X]) *Term[W, X] {
	return &Term[W, X]{Kind: KindInjR, Left: t}
}

// Pair produces the pair of l's and r's outputs from a shared input.
func Pair[W any, X Extension](l, r *Term[W, X]) *Term[W, X] {
	return &Term[W, X]{Kind: KindPair, Left: l, Right: r}
}

// Comp is sequential composition: run f, feed its output to g.
func Comp[W any, X Extension](f, g *Term[W, X]) *Term[W, X] {
	return &Term[W, X]{Kind: KindComp, Left: f, Right: g}
}

// Case branches on the sum tag of the first input component: tag 0 runs l,
// tag 1 runs r.
func Case[W any, X Extension](l, r *Term[W, X]) *Term[W, X] {
	return &Term[W, X]{Kind: KindCase, Left: l, Right: r}
}

// Drop discards the first component of a pair input and runs t on the rest.
func Drop[W any, X Extension](t *Term[W, X]) *Term[W, X] {
	return &Term[W, X]{Kind: KindDrop, Left: t}
}

// Wit returns a witness leaf carrying w: data supplied externally at
// verification time and opaque at compile time.
func Wit[W any, X Extension](w W) *Term[W, X] {
	return &Term[W, X]{Kind: KindWitness, Witness: w}
}

// Jet returns a jet leaf referencing the built-in function j.
func Jet[W any, X Extension](j jets.Node) *Term[W, X] {
	return &Term[W, X]{Kind: KindJet, Jet: j}
}

// Ext returns an extension leaf referencing the primitive node n.
func Ext[W any, X Extension](n X) *Term[W, X] {
	return &Term[W, X]{Kind: KindExt, Node: n}
}

// EncodeNode writes the extension leaf's codeword by delegating to the
// node's own encoder. Only extension leaves carry a node.
func (t *Term[W, X]) EncodeNode(w bitio.Writer) (int, error) {
	if t.Kind != KindExt {
		return 0, ErrNotExtension
	}
	return t.Node.Encode(w)
}
