// Package verifier implements the one-shot combined check: given a
// CombinedSolution and the epoch's public parameters, it performs exactly
// one pairing check and one MSM, regardless of how many individual
// solutions were folded into it.
package verifier

import (
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/giuliop/coinbase-puzzle/accumulator"
	"github.com/giuliop/coinbase-puzzle/epoch"
	"github.com/giuliop/coinbase-puzzle/internal/fanout"
	"github.com/giuliop/coinbase-puzzle/kzg"
	"github.com/giuliop/coinbase-puzzle/msm"
	"github.com/giuliop/coinbase-puzzle/prover"
	"github.com/giuliop/coinbase-puzzle/transcript"
)

// Verify checks a CombinedSolution against the epoch's challenge and
// VerifyingKey:
//  1. reject if combined.Individual is empty.
//  2. reject if combined.Proof carries hiding randomness.
//  3. recompute p_i for each entry, recompute the shared transcript over
//     the commitment list to get z and the per-entry weights alpha_i.
//  4. combined_eval = C(z) * sum alpha_i * p_i(z).
//  5. combined_commitment = MSM({C_i}, {alpha_i}).
//  6. return kzg.Check(vk, combined_commitment, z, combined_eval, combined.Proof).
//
// Never returns an error: every rejection reason collapses into false, so
// a caller cannot distinguish an empty list from a bad pairing.
func Verify(vk *kzg.VerifyingKey, info epoch.Info, ch epoch.Challenge, combined accumulator.CombinedSolution) bool {
	if len(combined.Individual) == 0 {
		return false
	}
	if combined.Proof.Hiding {
		return false
	}

	commitments := make([]kzg.Commitment, len(combined.Individual))
	for i, s := range combined.Individual {
		commitments[i] = s.Commitment
	}

	weights := transcript.HashCommitments(commitments)
	z := weights[len(weights)-1]
	alphas := weights[:len(weights)-1]

	cz := ch.Poly().Evaluate(z)

	evals := fanout.Map(combined.Individual, 0, func(i int, s accumulator.PartialSolution) fr.Element {
		p := prover.SampleSolutionPolynomial(ch, info, s.Address, s.Nonce)
		return p.Evaluate(z)
	})

	var weightedSum fr.Element
	for i, pz := range evals {
		var term fr.Element
		term.Mul(&alphas[i], &pz)
		weightedSum.Add(&weightedSum, &term)
	}
	var combinedEval fr.Element
	combinedEval.Mul(&cz, &weightedSum)

	bases := make([]bls12377.G1Affine, len(commitments))
	for i, c := range commitments {
		bases[i] = c.Point
	}
	acc, err := msm.VariableBase(bases, alphas)
	if err != nil {
		return false
	}
	var combinedPoint bls12377.G1Affine
	combinedPoint.FromJacobian(&acc)
	combinedCommitment := kzg.Commitment{Point: combinedPoint}

	ok, err := kzg.Check(vk, combinedCommitment, z, combinedEval, combined.Proof)
	if err != nil {
		return false
	}
	return ok
}
