// Package setup produces and trims the Structured Reference String the
// rest of the module builds on. Generation here is a local, transparent
// toy ceremony: a single party samples the secret scalar beta and
// immediately discards it once the powers are computed, which is
// appropriate for benchmarking and testing but not for production use.
// A production deployment needs a multi-party ceremony transcript for
// its curve, and none of the existing public ceremonies were run over
// this curve, so there is no existing transcript this module can parse
// and trust instead.
package setup

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"

	"github.com/giuliop/coinbase-puzzle/kzg"
)

// GenerateSRS samples a secret scalar beta from rng and derives the
// powers {beta^i * g} for i in [0, maxDegree], plus h and beta*h in G2.
// beta itself is never retained past this call, following the same
// shape as gnark-crypto's own NewSRS helper for BLS12-377 KZG.
func GenerateSRS(maxDegree uint64, rng io.Reader) (*kzg.SRS, error) {
	betaBig, err := randFieldElement(rng)
	if err != nil {
		return nil, fmt.Errorf("%w: sampling beta: %v", kzg.ErrSetup, err)
	}
	var beta fr.Element
	beta.SetBigInt(betaBig)

	_, _, g1gen, g2gen := bls12377.Generators()

	powersOfBetaG := make([]bls12377.G1Affine, maxDegree+1)
	powersOfBetaG[0] = g1gen

	if maxDegree > 0 {
		alphas := make([]fr.Element, maxDegree)
		alphas[0] = beta
		for i := 1; i < len(alphas); i++ {
			alphas[i].Mul(&alphas[i-1], &beta)
		}
		for i := range alphas {
			alphas[i].FromMont()
		}
		copy(powersOfBetaG[1:], bls12377.BatchScalarMultiplicationG1(&g1gen, alphas))
	}

	var betaH bls12377.G2Affine
	betaH.ScalarMultiplication(&g2gen, betaBig)

	return &kzg.SRS{
		PowersOfBetaG: powersOfBetaG,
		H:             g2gen,
		BetaH:         betaH,
		PreparedH:     g2gen,
		PreparedBetaH: betaH,
	}, nil
}

// Trim derives a ProvingKey and VerifyingKey for polynomials of degree up
// to degree from a larger SRS. It panics if the SRS cannot support the
// requested degree, matching the original source's contract that trim is
// only ever called with a degree the caller already knows the SRS covers.
func Trim(srs *kzg.SRS, degree uint64) (*kzg.ProvingKey, *kzg.VerifyingKey, error) {
	if uint64(len(srs.PowersOfBetaG)) < degree+1 {
		panic(fmt.Sprintf("setup: trim: SRS of max degree %d cannot support degree %d",
			len(srs.PowersOfBetaG)-1, degree))
	}

	vk := kzg.VerifyingKey{
		G:             srs.PowersOfBetaG[0],
		GammaG:        bls12377.G1Affine{},
		H:             srs.H,
		BetaH:         srs.BetaH,
		PreparedH:     srs.PreparedH,
		PreparedBetaH: srs.PreparedBetaH,
	}

	lagrangeBases, domainSize, err := lagrangeBasesAtBetaG(srs.PowersOfBetaG, degree+1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: deriving Lagrange bases: %v", kzg.ErrSetup, err)
	}

	pk := &kzg.ProvingKey{
		PowersOfBetaG: append([]bls12377.G1Affine(nil), srs.PowersOfBetaG[:degree+1]...),
		LagrangeBasesAtBetaG: map[uint64][]bls12377.G1Affine{
			domainSize: lagrangeBases,
		},
		VerifyingKey: vk,
	}
	return pk, &vk, nil
}

// lagrangeBasesAtBetaG computes {L_i(beta)*g} for i in [0, domainSize) for
// domainSize = next_power_of_two(minSize), using the identity
// L_i(X) = (1/n) * sum_k omega^{-i*k} * X^k, evaluated at X = beta by
// reusing the already-computed powers of beta*g: each basis commitment is
// itself an MSM over the same PowersOfBetaG prefix with weights
// omega^{-i*k}/n.
func lagrangeBasesAtBetaG(powersOfBetaG []bls12377.G1Affine, minSize uint64) ([]bls12377.G1Affine, uint64, error) {
	domainSize := nextPowerOfTwo(minSize)
	if uint64(len(powersOfBetaG)) < domainSize {
		return nil, 0, fmt.Errorf("SRS has %d powers, need at least %d for domain size %d",
			len(powersOfBetaG), domainSize, domainSize)
	}

	domain := fft.NewDomain(domainSize)

	bases := make([]bls12377.G1Affine, domainSize)
	omegaInvPowI := fr.NewElement(1)
	for i := uint64(0); i < domainSize; i++ {
		weights := make([]fr.Element, domainSize)
		w := fr.NewElement(1)
		for k := uint64(0); k < domainSize; k++ {
			weights[k].Mul(&w, &domain.CardinalityInv)
			w.Mul(&w, &omegaInvPowI)
		}

		var acc bls12377.G1Jac
		if _, err := acc.MultiExp(powersOfBetaG[:domainSize], weights, ecc.MultiExpConfig{}); err != nil {
			return nil, 0, err
		}
		bases[i].FromJacobian(&acc)

		omegaInvPowI.Mul(&omegaInvPowI, &domain.GeneratorInv)
	}
	return bases, domainSize, nil
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

func randFieldElement(rng io.Reader) (*big.Int, error) {
	return randBigInt(rng, fr.Modulus())
}

func randBigInt(rng io.Reader, max *big.Int) (*big.Int, error) {
	bitLen := max.BitLen()
	byteLen := (bitLen + 7) / 8
	for {
		buf := make([]byte, byteLen)
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		excess := byteLen*8 - bitLen
		buf[0] &= byte(0xff >> uint(excess))
		n := new(big.Int).SetBytes(buf)
		if n.Sign() != 0 && n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
