package policy

import (
	"fmt"

	"github.com/funvibe/simplicity/pkg/bitcoin"
	"github.com/funvibe/simplicity/pkg/bitio"
	"github.com/funvibe/simplicity/pkg/jets"
	"github.com/funvibe/simplicity/pkg/term"
	"github.com/funvibe/simplicity/pkg/types"
)

// Term is the compiler's output: a combinator term over the Bitcoin
// extension catalog. Witness payloads are empty at commitment time; the
// actual signatures, preimages and selector bits arrive at verification
// time.
type Term = term.Term[struct{}, bitcoin.Node]

func unit() *Term              { return term.Unit[struct{}, bitcoin.Node]() }
func witness() *Term           { return term.Wit[struct{}, bitcoin.Node](struct{}{}) }
func jet(j jets.Node) *Term    { return term.Jet[struct{}, bitcoin.Node](j) }
func ext(n bitcoin.Node) *Term { return term.Ext[struct{}](n) }

// Scribe builds the constant function producing v: unit maps to the unit
// combinator, an injection to the matching injection of the scribed
// sub-value, a product to the pair of the scribed halves. The resulting
// term's structural shape mirrors the value's type.
func Scribe(v *types.Value) *Term {
	switch v.Kind {
	case types.ValueUnit:
		return unit()
	case types.ValueSumL:
		return term.InjL(Scribe(v.Left))
	case types.ValueSumR:
		return term.InjR(Scribe(v.Left))
	case types.ValueProd:
		return term.Pair(Scribe(v.Left), Scribe(v.Right))
	}
	panic(fmt.Sprintf("policy: unknown value kind %d", uint8(v.Kind)))
}

// Zero is the scribed constant false: the left-injected unit.
func Zero() *Term {
	return Scribe(types.SumL(types.UnitValue()))
}

// One is the scribed constant true: the right-injected unit.
func One() *Term {
	return Scribe(types.SumR(types.UnitValue()))
}

// Cond branches on a bit: tag 1 runs then, tag 0 runs els. The case
// combinator selects its left arm on tag 0, so the else clause sits on the
// left; drop discards the selector's unit payload before either arm runs.
func Cond(then, els *Term) *Term {
	return term.Case(term.Drop(els), term.Drop(then))
}

// The widening ladder turns a selector bit into a 32-bit addend by
// pre-padding scribed zeros, doubling the width at each rung.

func u1ToU2(s *Term) *Term {
	return term.Pair(Scribe(types.U1(0)), s)
}

func u1ToU4(s *Term) *Term {
	return term.Pair(Scribe(types.U2(0)), u1ToU2(s))
}

func u1ToU8(s *Term) *Term {
	return term.Pair(Scribe(types.U4(0)), u1ToU4(s))
}

func u1ToU16(s *Term) *Term {
	return term.Pair(Scribe(types.U8(0)), u1ToU8(s))
}

func u1ToU32(s *Term) *Term {
	return term.Pair(Scribe(types.U16(0)), u1ToU16(s))
}

// Compile lowers a spending policy into a combinator term over the Bitcoin
// extension catalog. The produced term computes exactly the policy's
// predicate; failures of the individual checks are a verification-time
// concern.
func Compile(p *Policy) (*Term, error) {
	switch p.Kind {
	case KindTrivial:
		return unit(), nil
	case KindUnsatisfiable:
		return nil, ErrUnsatisfiable
	case KindKey:
		return compileKey(p.Key)
	case KindSha256:
		return compileSha256(p.Hash)
	case KindAfter:
		return compileTimelock(p.N, bitcoin.LockTime), nil
	case KindOlder:
		return compileTimelock(p.N, bitcoin.CurrentSequence), nil
	case KindThreshold:
		return compileThreshold(p.K, p.Subs)
	case KindAnd:
		if len(p.Subs) != 2 {
			return nil, &ArityError{Kind: KindAnd, Got: len(p.Subs)}
		}
		l, err := Compile(p.Subs[0])
		if err != nil {
			return nil, err
		}
		r, err := Compile(p.Subs[1])
		if err != nil {
			return nil, err
		}
		return term.Comp(l, r), nil
	case KindOr:
		if len(p.Subs) != 2 {
			return nil, &ArityError{Kind: KindOr, Got: len(p.Subs)}
		}
		l, err := Compile(p.Subs[0])
		if err != nil {
			return nil, err
		}
		r, err := Compile(p.Subs[1])
		if err != nil {
			return nil, err
		}
		// The prover picks the satisfiable branch out of band and supplies
		// the selector bit; both branches are committed either way.
		return term.Comp(witness(), Cond(l, r)), nil
	}
	panic(fmt.Sprintf("policy: unknown policy kind %d", uint8(p.Kind)))
}

// scribe256 decodes a 32-byte constant against the 256-bit word type and
// scribes it.
func scribe256(b [32]byte) (*Term, error) {
	v, err := types.FromBits(bitio.NewReader(b[:]), types.NameWord256.Type())
	if err != nil {
		return nil, err
	}
	return Scribe(v), nil
}

func compileKey(pk PublicKey) (*Term, error) {
	key := pk.XOnly()
	scribeKey, err := scribe256(key)
	if err != nil {
		return nil, err
	}
	// Pair the committed key with the signature witness and hand both to
	// the verification jet.
	pair := term.Pair(scribeKey, witness())
	return term.Comp(pair, jet(jets.SchnorrAssert)), nil
}

func compileSha256(h [32]byte) (*Term, error) {
	target, err := scribe256(h)
	if err != nil {
		return nil, err
	}
	// Hash the witness preimage; the jet's typing pins its length.
	computed := term.Comp(witness(), jet(jets.Sha256))
	pair := term.Pair(target, computed)
	return term.Comp(pair, jet(jets.EqV256)), nil
}

// compileTimelock asserts that the policy's value n is below the
// chain-observed field (locktime or sequence); the comparison direction is
// the jet's protocol-defined convention.
func compileTimelock(n uint32, node bitcoin.Node) *Term {
	pair := term.Pair(Scribe(types.U32(n)), ext(node))
	return term.Comp(pair, jet(jets.LessThanV32))
}

func compileThreshold(k uint32, subs []*Policy) (*Term, error) {
	if len(subs) < 2 || len(subs) > MaxThresholdSubs {
		return nil, &ArityError{Kind: KindThreshold, Got: len(subs)}
	}

	// Each branch gets a selector witness bit saying whether it is taken.
	// The same selector term is shared between the branch gate and the
	// running sum.
	child, err := Compile(subs[0])
	if err != nil {
		return nil, err
	}
	selector := witness()
	acc := term.Comp(selector, Cond(child, unit()))
	sum := u1ToU32(selector)

	for _, sub := range subs[1:] {
		child, err := Compile(sub)
		if err != nil {
			return nil, err
		}
		selector := witness()
		branch := term.Comp(selector, Cond(child, unit()))
		acc = term.Comp(acc, branch)

		full := term.Comp(term.Pair(sum, u1ToU32(selector)), jet(jets.Adder32))
		// Discard the carry bit; MaxThresholdSubs keeps the sum in range.
		sum = term.Drop(full)
	}

	// Run every gated branch, then assert the selector count equals k.
	count := term.Comp(term.Pair(Scribe(types.U32(k)), sum), jet(jets.EqV32))
	return term.Comp(acc, count), nil
}
