package transcript

import (
	"testing"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"

	"github.com/giuliop/coinbase-puzzle/kzg"
)

func TestHashToPolyDeterministic(t *testing.T) {
	a := HashToPoly([]byte("epoch-7"), 5)
	b := HashToPoly([]byte("epoch-7"), 5)
	if len(a) != 6 || len(b) != 6 {
		t.Fatalf("expected 6 coefficients, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			t.Fatalf("coefficient %d differs between identical calls", i)
		}
	}
}

func TestHashToPolyVariesByInput(t *testing.T) {
	a := HashToPoly([]byte("x"), 3)
	b := HashToPoly([]byte("y"), 3)
	same := true
	for i := range a {
		if !a[i].Equal(&b[i]) {
			same = false
		}
	}
	if same {
		t.Fatalf("distinct inputs produced identical polynomials")
	}
}

func TestHashCommitmentDeterministic(t *testing.T) {
	_, _, g1gen, _ := bls12377.Generators()
	c := kzg.Commitment{Point: g1gen}
	a := HashCommitment(c)
	b := HashCommitment(c)
	if !a.Equal(&b) {
		t.Fatalf("hash_commitment is not deterministic")
	}
}

func TestHashCommitmentsLength(t *testing.T) {
	_, _, g1gen, _ := bls12377.Generators()
	cs := []kzg.Commitment{{Point: g1gen}, {Point: g1gen}, {Point: g1gen}}
	out := HashCommitments(cs)
	if len(out) != len(cs)+1 {
		t.Fatalf("expected %d elements, got %d", len(cs)+1, len(out))
	}
}

func TestHashCommitmentsOrderSensitive(t *testing.T) {
	_, _, g1gen, _ := bls12377.Generators()
	var g1gen2 bls12377.G1Affine
	g1gen2.Double(&g1gen)

	a := []kzg.Commitment{{Point: g1gen}, {Point: g1gen2}}
	b := []kzg.Commitment{{Point: g1gen2}, {Point: g1gen}}

	outA := HashCommitments(a)
	outB := HashCommitments(b)

	allEqual := true
	for i := range outA {
		if !outA[i].Equal(&outB[i]) {
			allEqual = false
		}
	}
	if allEqual {
		t.Fatalf("permuting the commitment list did not change the transcript output")
	}
}

func TestHashCommitmentsEmpty(t *testing.T) {
	out := HashCommitments(nil)
	if len(out) != 1 {
		t.Fatalf("expected exactly the shared point for an empty list, got %d elements", len(out))
	}
}
