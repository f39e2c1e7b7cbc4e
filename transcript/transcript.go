// Package transcript implements the hash-to-polynomial expander and the
// Fiat-Shamir transcript that folds a list of commitments into per-solution
// challenges and a shared evaluation point. The exact byte layout is a
// consensus parameter: every party folding or verifying solutions for the
// same epoch must derive challenges the same way, so the scheme is fixed
// here rather than left configurable.
package transcript

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
	"golang.org/x/crypto/sha3"

	"github.com/giuliop/coinbase-puzzle/kzg"
)

// HashToPoly deterministically expands input into degree+1 field-element
// coefficients: coefficient i is SHA3-256(input || LE64(i)), interpreted as
// a little-endian integer and reduced modulo the scalar field order.
// Identical (input, degree) always yields the same polynomial.
func HashToPoly(input []byte, degree uint64) kzg.Polynomial {
	poly := make(kzg.Polynomial, degree+1)
	buf := make([]byte, len(input)+8)
	copy(buf, input)
	for i := uint64(0); i <= degree; i++ {
		putLE64(buf[len(input):], i)
		digest := sha3.Sum256(buf)
		poly[i] = feFromLEBytes(digest[:])
	}
	return poly
}

// HashCommitment reduces the canonical compressed encoding of a commitment
// to a single field element, using the same little-endian reduction rule
// as HashToPoly.
func HashCommitment(c kzg.Commitment) fr.Element {
	b := c.Point.Bytes()
	digest := sha3.Sum256(b[:])
	return feFromLEBytes(digest[:])
}

// HashCommitments folds an ordered list of commitments into len(cs)+1
// field elements: one challenge per commitment, followed by one shared
// evaluation point. Every commitment is bound in order (domain-separated
// per-commitment labels) before any challenge is read off. Challenges are
// chained, each one hashing the previous challenge, so challenge i depends
// on commitments 0..i; the final "point" challenge additionally binds the
// full ordered commitment list, so it depends on the complete ordering.
func HashCommitments(cs []kzg.Commitment) []fr.Element {
	labels := make([]string, len(cs)+1)
	for i := range cs {
		labels[i] = fmt.Sprintf("challenge-%d", i)
	}
	labels[len(cs)] = "point"

	fs := fiatshamir.NewTranscript(sha3.New256(), labels...)

	var allBytes []byte
	for i, c := range cs {
		b := c.Point.Bytes()
		allBytes = append(allBytes, b[:]...)
		if err := fs.Bind(labels[i], b[:]); err != nil {
			panic(fmt.Sprintf("transcript: binding commitment %d: %v", i, err))
		}
	}
	if err := fs.Bind("point", allBytes); err != nil {
		panic(fmt.Sprintf("transcript: binding shared point: %v", err))
	}

	out := make([]fr.Element, len(cs)+1)
	for i := range cs {
		b, err := fs.ComputeChallenge(labels[i])
		if err != nil {
			panic(fmt.Sprintf("transcript: computing challenge %d: %v", i, err))
		}
		out[i] = feFromLEBytes(b)
	}
	b, err := fs.ComputeChallenge("point")
	if err != nil {
		panic(fmt.Sprintf("transcript: computing shared point: %v", err))
	}
	out[len(cs)] = feFromLEBytes(b)
	return out
}

func putLE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}

// feFromLEBytes interprets b as a little-endian unsigned integer and
// reduces it modulo the scalar field order. fr.Element.SetBytes expects a
// big-endian encoding, so the bytes are reversed first.
func feFromLEBytes(b []byte) fr.Element {
	rev := make([]byte, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}
	var e fr.Element
	e.SetBytes(rev)
	return e
}
