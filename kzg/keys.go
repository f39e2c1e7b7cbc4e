package kzg

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
)

// PreparedG2 is the pairing-ready form of a fixed G2 point. gnark-crypto's
// BLS12-377 pairing does not expose a separate Miller-loop-line
// precomputation type the way some other pairing libraries do, so this is
// the affine point itself: PairingCheck folds the precomputation into each
// call. The field exists so the data model mirrors the original source's
// prepared_h / prepared_beta_h without pretending to cache work we can't
// actually cache with this library.
type PreparedG2 = bls12377.G2Affine

// SRS is the structured reference string: an ordered sequence of powers of
// a secret scalar beta in G1, plus the G2 generator and beta*generator
// needed by the pairing check. SRS generation (package setup.GenerateSRS)
// is treated as a collaborator concern the core depends on, not re-derives.
type SRS struct {
	// PowersOfBetaG is {beta^i * g} for i in [0, max_degree].
	PowersOfBetaG []bls12377.G1Affine
	H             bls12377.G2Affine
	BetaH         bls12377.G2Affine
	PreparedH     PreparedG2
	PreparedBetaH PreparedG2
}

// VerifyingKey holds everything a combined-solution verifier needs.
// GammaG is always the G1 identity: this module never hides commitments,
// so there is no blinding generator to carry.
type VerifyingKey struct {
	G             bls12377.G1Affine
	GammaG        bls12377.G1Affine
	H             bls12377.G2Affine
	BetaH         bls12377.G2Affine
	PreparedH     PreparedG2
	PreparedBetaH PreparedG2
}

// ProvingKey is the trimmed prefix of an SRS a prover or accumulator needs:
// enough powers of beta*g to commit to and open polynomials up to Degree,
// plus the Lagrange-basis commitments for the single evaluation-domain size
// that Trim populates, and the embedded VerifyingKey so a prover can also
// act as its own accumulator without a second key.
type ProvingKey struct {
	PowersOfBetaG []bls12377.G1Affine
	// LagrangeBasesAtBetaG maps domain size (a power of two) to the vector
	// of Lagrange-basis commitments {L_i(beta)*g} for that domain. Trim
	// populates exactly one entry, for next_power_of_two(Degree()+1).
	LagrangeBasesAtBetaG map[uint64][]bls12377.G1Affine
	VerifyingKey
}

// Degree returns the maximum polynomial degree this key can commit to.
func (pk *ProvingKey) Degree() int {
	return len(pk.PowersOfBetaG) - 1
}
