// Package prover builds a single address's candidate solution for an
// epoch: a solution polynomial derived from (epoch, address, nonce),
// committed together with the epoch challenge and opened at the
// Fiat-Shamir point.
package prover

import (
	"encoding/binary"
	"fmt"

	"github.com/giuliop/coinbase-puzzle/epoch"
	"github.com/giuliop/coinbase-puzzle/kzg"
	"github.com/giuliop/coinbase-puzzle/transcript"
)

// Address identifies a prover. Puzzle solutions are keyed by the pair
// (Address, Nonce).
type Address [32]byte

// Solution is a single address's candidate for an epoch: the commitment
// to product = p*C and an opening of that commitment at the
// Fiat-Shamir point derived from the commitment itself.
type Solution struct {
	Address    Address
	Nonce      uint64
	Commitment kzg.Commitment
	Proof      kzg.Opening
}

// SampleSolutionPolynomial derives this address+nonce's candidate
// polynomial p from the 48-byte buffer epoch_info(8) || address(32) ||
// nonce(8), all little-endian, expanded to degree deg(C).
func SampleSolutionPolynomial(ch epoch.Challenge, info epoch.Info, addr Address, nonce uint64) kzg.Polynomial {
	var buf [48]byte
	epochBytes := info.Bytes()
	copy(buf[0:8], epochBytes[:])
	copy(buf[8:40], addr[:])
	binary.LittleEndian.PutUint64(buf[40:48], nonce)
	return transcript.HashToPoly(buf[:], uint64(ch.Degree()))
}

// Prove builds this address+nonce's ProverPuzzleSolution:
//  1. sample p from (info, addr, nonce).
//  2. product = p * C.
//  3. commit to product with no randomness; this is the per-solution
//     advertised commitment.
//  4. derive z = hash_commitment(commitment).
//  5. open product at z.
//  6. return {address, nonce, commitment, proof}.
func Prove(pk *kzg.ProvingKey, info epoch.Info, ch epoch.Challenge, addr Address, nonce uint64) (Solution, error) {
	p := SampleSolutionPolynomial(ch, info, addr, nonce)
	product := p.Mul(ch.Poly())

	commitment, randomness, err := kzg.Commit(pk.PowersOfBetaG, product)
	if err != nil {
		return Solution{}, fmt.Errorf("prover: commit: %w", err)
	}

	z := transcript.HashCommitment(commitment)

	proof, err := kzg.Open(pk.PowersOfBetaG, product, z, randomness)
	if err != nil {
		return Solution{}, fmt.Errorf("prover: open: %w", err)
	}

	return Solution{
		Address:    addr,
		Nonce:      nonce,
		Commitment: commitment,
		Proof:      proof,
	}, nil
}
