// Package policy models high-level spending conditions and compiles them
// into combinator terms over the Bitcoin extension catalog.
package policy

import "fmt"

// PublicKey is the key-material capability: it produces the 32-byte x-only
// encoding of the key a policy leaf refers to. It is consumed once per Key
// leaf during compilation.
type PublicKey interface {
	XOnly() [32]byte
}

// Kind enumerates policy node kinds.
type Kind uint8

const (
	KindTrivial Kind = iota
	KindUnsatisfiable
	KindKey
	KindSha256
	KindAfter
	KindOlder
	KindThreshold
	KindAnd
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindTrivial:
		return "trivial"
	case KindUnsatisfiable:
		return "unsatisfiable"
	case KindKey:
		return "key"
	case KindSha256:
		return "sha256"
	case KindAfter:
		return "after"
	case KindOlder:
		return "older"
	case KindThreshold:
		return "threshold"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Policy is a spending-condition AST node. The tree is produced by an
// external parser, owned by the caller and borrowed immutably by Compile.
type Policy struct {
	Kind Kind
	Key  PublicKey // KindKey
	Hash [32]byte  // KindSha256
	N    uint32    // KindAfter, KindOlder
	K    uint32    // KindThreshold
	Subs []*Policy // KindThreshold, KindAnd, KindOr
}

// Trivial returns the always-satisfied policy.
func Trivial() *Policy {
	return &Policy{Kind: KindTrivial}
}

// Unsatisfiable returns the never-satisfied policy.
func Unsatisfiable() *Policy {
	return &Policy{Kind: KindUnsatisfiable}
}

// Key returns a policy satisfied by a signature under pk.
func Key(pk PublicKey) *Policy {
	return &Policy{Kind: KindKey, Key: pk}
}

// Sha256 returns a policy satisfied by a preimage of h.
func Sha256(h [32]byte) *Policy {
	return &Policy{Kind: KindSha256, Hash: h}
}

// After returns a policy satisfied once the absolute locktime reaches n.
func After(n uint32) *Policy {
	return &Policy{Kind: KindAfter, N: n}
}

// Older returns a policy satisfied once the input's relative age reaches n.
func Older(n uint32) *Policy {
	return &Policy{Kind: KindOlder, N: n}
}

// Threshold returns a policy satisfied when exactly k of the sub-policies
// are satisfied.
func Threshold(k uint32, subs ...*Policy) *Policy {
	return &Policy{Kind: KindThreshold, K: k, Subs: subs}
}

// And returns the conjunction of l and r.
func And(l, r *Policy) *Policy {
	return &Policy{Kind: KindAnd, Subs: []*Policy{l, r}}
}

// Or returns the disjunction of l and r.
func Or(l, r *Policy) *Policy {
	return &Policy{Kind: KindOr, Subs: []*Policy{l, r}}
}
