// Package epoch derives the per-epoch challenge polynomial every solution
// and verification in a round is measured against.
package epoch

import (
	"encoding/binary"

	"github.com/giuliop/coinbase-puzzle/kzg"
	"github.com/giuliop/coinbase-puzzle/transcript"
)

// Info identifies an epoch. It serializes to 8 little-endian bytes, the
// input to the challenge polynomial's hash-to-poly expansion.
type Info uint64

// Bytes returns the little-endian encoding of the epoch number.
func (i Info) Bytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	return b
}

// Challenge is the epoch's fixed polynomial C, held for the duration of
// the epoch and shared by every prover and the accumulator/verifier.
type Challenge struct {
	poly kzg.Polynomial
}

// Degree returns deg(C).
func (c Challenge) Degree() int {
	return c.poly.Degree()
}

// Poly exposes the dense coefficient vector, for callers (prover,
// accumulator, verifier) that need to multiply or evaluate C directly.
func (c Challenge) Poly() kzg.Polynomial {
	return c.poly
}

// InitForEpoch derives the epoch's challenge polynomial: the epoch number
// serialized to 8 little-endian bytes, expanded by hash_to_poly to a dense
// polynomial of degree exactly degree.
func InitForEpoch(info Info, degree uint64) Challenge {
	b := info.Bytes()
	return Challenge{poly: transcript.HashToPoly(b[:], degree)}
}
