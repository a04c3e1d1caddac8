// Package cmr implements the commitment value construction shared by all
// primitive nodes: a 32-byte tagged hash identifying a node for
// consensus-level commitments.
package cmr

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the size of a commitment value in bytes.
const Size = 32

// CMR is a commitment Merkle root: a structural, domain-separated hash
// identifying a term or primitive node.
type CMR [Size]byte

// New computes the commitment value for a domain-separated tag as the
// tagged hash sha256(sha256(tag) || sha256(tag)). The construction is pure:
// the same tag always yields the same value.
func New(tag string) CMR {
	th := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(th[:])
	h.Write(th[:])
	var out CMR
	copy(out[:], h.Sum(nil))
	return out
}

// String returns the lower-case hex encoding.
func (c CMR) String() string {
	return hex.EncodeToString(c[:])
}
