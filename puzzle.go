// Package puzzle is the public façade over the coinbase puzzle's six
// boundary operations: Setup, Trim, InitForEpoch, Prove, Accumulate and
// Verify, re-exported from their owning packages so a caller only ever
// needs this one import path.
package puzzle

import (
	"io"

	"github.com/giuliop/coinbase-puzzle/accumulator"
	"github.com/giuliop/coinbase-puzzle/epoch"
	"github.com/giuliop/coinbase-puzzle/kzg"
	"github.com/giuliop/coinbase-puzzle/prover"
	"github.com/giuliop/coinbase-puzzle/setup"
	"github.com/giuliop/coinbase-puzzle/verifier"
)

// Re-exported types, so a caller only ever needs this one import path.
type (
	Address          = prover.Address
	Solution         = prover.Solution
	PartialSolution  = accumulator.PartialSolution
	CombinedSolution = accumulator.CombinedSolution
	Info             = epoch.Info
	Challenge        = epoch.Challenge
	ProvingKey       = kzg.ProvingKey
	VerifyingKey     = kzg.VerifyingKey
	SRS              = kzg.SRS
)

// AccumulateOption configures an Accumulate call; see accumulator.Option.
type AccumulateOption = accumulator.Option

// WithDifficultyFilter re-exports accumulator.WithDifficultyFilter.
func WithDifficultyFilter(f func(kzg.Commitment) bool) AccumulateOption {
	return accumulator.WithDifficultyFilter(f)
}

// WithWorkers re-exports accumulator.WithWorkers.
func WithWorkers(n int) AccumulateOption {
	return accumulator.WithWorkers(n)
}

// Setup samples a fresh SRS supporting polynomials up to maxDegree.
func Setup(maxDegree uint64, rng io.Reader) (*SRS, error) {
	return setup.GenerateSRS(maxDegree, rng)
}

// Trim derives a ProvingKey/VerifyingKey pair for polynomials of degree
// up to degree from a larger SRS.
func Trim(srs *SRS, degree uint64) (*ProvingKey, *VerifyingKey, error) {
	return setup.Trim(srs, degree)
}

// InitForEpoch derives the epoch's fixed challenge polynomial.
func InitForEpoch(info Info, degree uint64) Challenge {
	return epoch.InitForEpoch(info, degree)
}

// Prove builds one address's candidate solution for the epoch.
func Prove(pk *ProvingKey, info Info, ch Challenge, addr Address, nonce uint64) (Solution, error) {
	return prover.Prove(pk, info, ch, addr, nonce)
}

// Accumulate verifies and folds a batch of candidate solutions into one
// combined, singly-opened solution.
func Accumulate(pk *ProvingKey, info Info, ch Challenge, solutions []Solution, opts ...AccumulateOption) (CombinedSolution, error) {
	return accumulator.Accumulate(pk, info, ch, solutions, opts...)
}

// Verify checks a combined solution against the epoch's public parameters.
func Verify(vk *VerifyingKey, info Info, ch Challenge, combined CombinedSolution) bool {
	return verifier.Verify(vk, info, ch, combined)
}
