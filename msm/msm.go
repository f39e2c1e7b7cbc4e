// Package msm implements variable-base multi-scalar multiplication over
// BLS12-377 G1, the primitive the KZG commitment and the combined
// verifier's folding step both build on.
package msm

import (
	"runtime"
	"sync/atomic"

	"github.com/consensys/gnark-crypto/ecc"
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// chunkSize bounds how much work runs between checks of an abort signal.
// gnark-crypto's MultiExp does not expose a cancellation hook into its
// internal bucket loop, so an abort-aware caller instead submits the MSM
// in windows of this size and checks the signal between them, an
// approximation of aborting mid-computation that doesn't require forking
// the underlying algorithm.
const chunkSize = 1 << 14

type config struct {
	abort   *atomic.Bool
	workers int
}

// Option configures a VariableBase call.
type Option func(*config)

// WithAbort registers a signal consulted between windows of work; once set,
// VariableBase returns the G1 identity without completing the remaining
// work.
func WithAbort(signal *atomic.Bool) Option {
	return func(c *config) { c.abort = signal }
}

// WithWorkers overrides the number of goroutines gnark-crypto's MultiExp
// may use internally. Defaults to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// VariableBase computes Sum_i scalars[i]*bases[i] in G1. It panics if the
// two slices differ in length (a contract violation, never expected under
// well-formed inputs). A zero-length input returns the identity.
//
// For BLS12-377, gnark-crypto's G1Jac.MultiExp already implements the
// windowed bucket method with Montgomery-trick batched affine additions,
// so this function is a thin, abort-aware wrapper around it rather than
// a second implementation of the same algorithm.
func VariableBase(bases []bls12377.G1Affine, scalars []fr.Element, opts ...Option) (bls12377.G1Jac, error) {
	if len(bases) != len(scalars) {
		panic("msm: length mismatch between bases and scalars")
	}

	cfg := config{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var acc bls12377.G1Jac
	if len(bases) == 0 {
		return acc, nil
	}

	if cfg.abort == nil || len(bases) <= chunkSize {
		if cfg.abort != nil && cfg.abort.Load() {
			return acc, nil
		}
		if _, err := acc.MultiExp(bases, scalars, ecc.MultiExpConfig{NbTasks: cfg.workers}); err != nil {
			return bls12377.G1Jac{}, err
		}
		return acc, nil
	}

	for start := 0; start < len(bases); start += chunkSize {
		if cfg.abort.Load() {
			return bls12377.G1Jac{}, nil
		}
		end := start + chunkSize
		if end > len(bases) {
			end = len(bases)
		}
		var part bls12377.G1Jac
		if _, err := part.MultiExp(bases[start:end], scalars[start:end], ecc.MultiExpConfig{NbTasks: cfg.workers}); err != nil {
			return bls12377.G1Jac{}, err
		}
		acc.AddAssign(&part)
	}
	return acc, nil
}
