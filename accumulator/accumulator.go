// Package accumulator batches a set of individually-provable solutions
// into one combined proof: verify each solution independently, then fold
// the survivors' solution polynomials into a single weighted sum and open
// that sum once.
package accumulator

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/rs/zerolog/log"

	"github.com/giuliop/coinbase-puzzle/epoch"
	"github.com/giuliop/coinbase-puzzle/internal/fanout"
	"github.com/giuliop/coinbase-puzzle/kzg"
	"github.com/giuliop/coinbase-puzzle/prover"
	"github.com/giuliop/coinbase-puzzle/transcript"
)

// PartialSolution is the publicly-advertised portion of one retained
// solution: enough to identify who contributed which commitment, without
// that solution's now-discarded individual proof.
type PartialSolution struct {
	Address    prover.Address
	Nonce      uint64
	Commitment kzg.Commitment
}

// CombinedSolution is the output of an accumulation round: the list of
// retained solutions plus one opening proof that certifies all of them at
// once under a shared, Fiat-Shamir-derived evaluation point.
type CombinedSolution struct {
	Individual []PartialSolution
	Proof      kzg.Opening
}

type options struct {
	workers          int
	difficultyFilter func(kzg.Commitment) bool
}

// Option configures an Accumulate call.
type Option func(*options)

// WithWorkers bounds the concurrency used for per-solution verification
// and the weighted polynomial fold. Zero (the default) leaves the degree
// of parallelism unbounded.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithDifficultyFilter installs an additional predicate over a retained
// solution's commitment, evaluated after the KZG check passes. Difficulty
// thresholds are not part of the core fold logic, but many deployments
// need one; this hook lets a caller layer it on without touching
// Accumulate itself.
func WithDifficultyFilter(f func(kzg.Commitment) bool) Option {
	return func(o *options) { o.difficultyFilter = f }
}

// Accumulate verifies each solution independently, discarding failed
// solutions silently since a rejected solution is not itself an error,
// and folds the survivors into one CombinedSolution:
//  1. for each solution, recompute p_i, z_i = hash_commitment(C_i),
//     v_i = C(z_i)*p_i(z_i), and keep it iff kzg.Check(vk, C_i, z_i, v_i, pi_i).
//  2. hash_commitments over the retained commitment list, in order, to get
//     the per-solution weights alpha_i and the shared point z.
//  3. P(X) = sum alpha_i * p_i(X), order-preserving.
//  4. Q(X) = P(X) * C(X).
//  5. proof = open(pk.powers, Q, z).
func Accumulate(pk *kzg.ProvingKey, info epoch.Info, ch epoch.Challenge, solutions []prover.Solution, opts ...Option) (CombinedSolution, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	type checked struct {
		ok bool
		p  kzg.Polynomial
	}

	results, err := fanout.MapErr(solutions, cfg.workers, func(_ int, s prover.Solution) (checked, error) {
		p := prover.SampleSolutionPolynomial(ch, info, s.Address, s.Nonce)
		z := transcript.HashCommitment(s.Commitment)
		v := evalProduct(ch, p, z)

		ok, err := kzg.Check(&pk.VerifyingKey, s.Commitment, z, v, s.Proof)
		if err != nil {
			return checked{}, fmt.Errorf("accumulator: checking solution for nonce %d: %w", s.Nonce, err)
		}
		if !ok {
			log.Debug().Uint64("nonce", s.Nonce).Msg("accumulator: KZG check failed, discarding solution")
			return checked{}, nil
		}
		if cfg.difficultyFilter != nil && !cfg.difficultyFilter(s.Commitment) {
			log.Debug().Uint64("nonce", s.Nonce).Msg("accumulator: difficulty filter rejected solution")
			return checked{}, nil
		}
		return checked{ok: true, p: p}, nil
	})
	if err != nil {
		return CombinedSolution{}, err
	}

	var retained []prover.Solution
	var retainedPolys []kzg.Polynomial
	for i, r := range results {
		if r.ok {
			retained = append(retained, solutions[i])
			retainedPolys = append(retainedPolys, r.p)
		}
	}
	log.Info().Int("submitted", len(solutions)).Int("retained", len(retained)).Msg("accumulator: round complete")

	individual := make([]PartialSolution, len(retained))
	commitments := make([]kzg.Commitment, len(retained))
	for i, s := range retained {
		individual[i] = PartialSolution{Address: s.Address, Nonce: s.Nonce, Commitment: s.Commitment}
		commitments[i] = s.Commitment
	}

	weights := transcript.HashCommitments(commitments)
	if len(weights) == 0 {
		return CombinedSolution{}, fmt.Errorf("accumulator: transcript produced no shared point")
	}
	z := weights[len(weights)-1]
	alphas := weights[:len(weights)-1]

	terms := fanout.Map(retainedPolys, cfg.workers, func(i int, p kzg.Polynomial) kzg.Polynomial {
		return p.Scale(alphas[i])
	})

	var P kzg.Polynomial
	for _, term := range terms {
		P = P.Add(term)
	}

	Q := P.Mul(ch.Poly())

	proof, err := kzg.Open(pk.PowersOfBetaG, Q, z, kzg.Randomness{})
	if err != nil {
		return CombinedSolution{}, fmt.Errorf("accumulator: open: %w", err)
	}

	return CombinedSolution{Individual: individual, Proof: proof}, nil
}

// evalProduct computes (p * C)(z) = C(z) * p(z) without materializing the
// full product polynomial, since the accumulator only needs its value at
// one point during per-solution verification.
func evalProduct(ch epoch.Challenge, p kzg.Polynomial, z fr.Element) fr.Element {
	cz := ch.Poly().Evaluate(z)
	pz := p.Evaluate(z)
	var v fr.Element
	v.Mul(&cz, &pz)
	return v
}
