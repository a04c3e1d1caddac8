package policy

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is returned by Compile for the Unsatisfiable policy,
// which has no working program by design.
var ErrUnsatisfiable = errors.New("policy: unsatisfiable policies have no program")

// MaxThresholdSubs bounds threshold fan-out so the 32-bit selector sum
// stays far from overflow.
const MaxThresholdSubs = 1 << 16

// ArityError reports a policy node carrying the wrong number of
// sub-policies. It is a contract violation by the caller, not a recoverable
// condition: compilation aborts immediately.
type ArityError struct {
	Kind Kind
	Got  int
}

func (e *ArityError) Error() string {
	switch e.Kind {
	case KindAnd, KindOr:
		return fmt.Sprintf("policy: %s requires exactly 2 sub-policies, got %d", e.Kind, e.Got)
	case KindThreshold:
		return fmt.Sprintf("policy: threshold requires between 2 and %d sub-policies, got %d", MaxThresholdSubs, e.Got)
	}
	return fmt.Sprintf("policy: %s has invalid arity %d", e.Kind, e.Got)
}
