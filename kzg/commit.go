package kzg

import (
	"fmt"
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/giuliop/coinbase-puzzle/msm"
)

// Commitment is a single G1 element committing to a polynomial. Hiding is
// always false in this module (no blinding term is ever added); it is kept
// as an explicit tag, mirroring the original source's is_hiding() check,
// so Check and the combined verifier have a single place to reject a
// commitment that somehow carries a blinding component.
type Commitment struct {
	Point  bls12377.G1Affine
	Hiding bool
}

// Opening is the KZG witness: a single G1 commitment to the quotient
// polynomial (p(X) - p(z)) / (X - z).
type Opening struct {
	Point  bls12377.G1Affine
	Hiding bool
}

// Randomness is the blinding factor used in a commit/open call. This
// module never hides, so Randomness only ever takes its zero value; it is
// kept as an explicit type (instead of being dropped) so Commit and Open
// share one signature with a hypothetical future hiding mode.
type Randomness struct{}

// Commit computes Commitment = MSM(powers[0..=deg(p)], coeffs(p)).
// Requires deg(p) <= len(powers)-1.
func Commit(powers []bls12377.G1Affine, p Polynomial) (Commitment, Randomness, error) {
	if len(p) == 0 {
		return Commitment{}, Randomness{}, nil
	}
	if len(p) > len(powers) {
		return Commitment{}, Randomness{}, fmt.Errorf("%w: polynomial of length %d exceeds %d available powers",
			ErrSetup, len(p), len(powers))
	}
	acc, err := msm.VariableBase(powers[:len(p)], []fr.Element(p))
	if err != nil {
		return Commitment{}, Randomness{}, fmt.Errorf("kzg: commit: %w", err)
	}
	var affine bls12377.G1Affine
	affine.FromJacobian(&acc)
	return Commitment{Point: affine}, Randomness{}, nil
}

// Open computes the quotient q(X) = (p(X) - p(z)) / (X - z) via synthetic
// division and commits to it. The Randomness parameter is accepted only so
// callers can pass the value Commit returned through unchanged; it plays
// no role since hiding is disabled.
func Open(powers []bls12377.G1Affine, p Polynomial, z fr.Element, _ Randomness) (Opening, error) {
	q := divideByLinear(p, z)
	c, _, err := Commit(powers, q)
	if err != nil {
		return Opening{}, fmt.Errorf("kzg: open: %w", err)
	}
	return Opening{Point: c.Point}, nil
}

// divideByLinear computes (p(X) - p(z)) / (X - z) by synthetic division,
// grounded on the BLS12-377 KZG reference implementation's
// dividePolyByXminusA: subtracting p(z) from the constant term first makes
// (X - z) an exact divisor, and the coefficients of the quotient can then
// be read off a single backward pass that carries the running remainder.
func divideByLinear(p Polynomial, z fr.Element) Polynomial {
	if len(p) == 0 {
		return nil
	}
	f := make(Polynomial, len(p))
	copy(f, p)
	v := p.Evaluate(z)
	f[0].Sub(&f[0], &v)

	var carry, term fr.Element
	for i := len(f) - 1; i >= 0; i-- {
		term.Mul(&carry, &z)
		f[i].Add(&f[i], &term)
		carry, f[i] = f[i], carry
	}
	return f[:len(f)-1]
}

// Check verifies e(C - v*g, h) == e(pi, beta*h - z*h). Returns false
// (never an error for a failed proof) if c or pi carries hiding
// randomness, per the non-hiding-only contract of this module.
func Check(vk *VerifyingKey, c Commitment, z, v fr.Element, pi Opening) (bool, error) {
	if c.Hiding || pi.Hiding {
		return false, nil
	}

	var vBig big.Int
	v.BigInt(&vBig)
	var vG bls12377.G1Affine
	vG.ScalarMultiplication(&vk.G, &vBig)

	var lhsJac, vGJac bls12377.G1Jac
	lhsJac.FromAffine(&c.Point)
	vGJac.FromAffine(&vG)
	lhsJac.SubAssign(&vGJac)
	var lhs bls12377.G1Affine
	lhs.FromJacobian(&lhsJac)

	var negPi bls12377.G1Affine
	negPi.Neg(&pi.Point)

	var zBig big.Int
	z.BigInt(&zBig)
	var hJac, betaHJac, shiftedJac bls12377.G2Jac
	hJac.FromAffine(&vk.H)
	betaHJac.FromAffine(&vk.BetaH)
	shiftedJac.ScalarMultiplication(&hJac, &zBig)
	shiftedJac.Neg(&shiftedJac)
	shiftedJac.AddAssign(&betaHJac)
	var shifted bls12377.G2Affine
	shifted.FromJacobian(&shiftedJac)

	ok, err := bls12377.PairingCheck(
		[]bls12377.G1Affine{lhs, negPi},
		[]bls12377.G2Affine{vk.H, shifted},
	)
	if err != nil {
		return false, fmt.Errorf("kzg: check: %w", err)
	}
	return ok, nil
}
