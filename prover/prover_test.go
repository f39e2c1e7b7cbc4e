package prover

import (
	"testing"

	"github.com/giuliop/coinbase-puzzle/epoch"
)

func TestSampleSolutionPolynomialDegree(t *testing.T) {
	ch := epoch.InitForEpoch(epoch.Info(1), 6)
	var addr Address
	addr[0] = 0xAB
	p := SampleSolutionPolynomial(ch, epoch.Info(1), addr, 99)
	if len(p) != 7 {
		t.Fatalf("expected 7 coefficients (degree 6), got %d", len(p))
	}
}

func TestSampleSolutionPolynomialDeterministic(t *testing.T) {
	ch := epoch.InitForEpoch(epoch.Info(1), 6)
	var addr Address
	addr[3] = 7
	a := SampleSolutionPolynomial(ch, epoch.Info(1), addr, 5)
	b := SampleSolutionPolynomial(ch, epoch.Info(1), addr, 5)
	for i := range a {
		if !a[i].Equal(&b[i]) {
			t.Fatalf("coefficient %d differs between identical calls", i)
		}
	}
}

func TestSampleSolutionPolynomialVariesByNonce(t *testing.T) {
	ch := epoch.InitForEpoch(epoch.Info(1), 6)
	var addr Address
	a := SampleSolutionPolynomial(ch, epoch.Info(1), addr, 1)
	b := SampleSolutionPolynomial(ch, epoch.Info(1), addr, 2)
	same := true
	for i := range a {
		if !a[i].Equal(&b[i]) {
			same = false
		}
	}
	if same {
		t.Fatalf("distinct nonces produced identical solution polynomials")
	}
}

func TestSampleSolutionPolynomialVariesByAddress(t *testing.T) {
	ch := epoch.InitForEpoch(epoch.Info(1), 6)
	var a1, a2 Address
	a2[0] = 1
	pa := SampleSolutionPolynomial(ch, epoch.Info(1), a1, 1)
	pb := SampleSolutionPolynomial(ch, epoch.Info(1), a2, 1)
	same := true
	for i := range pa {
		if !pa[i].Equal(&pb[i]) {
			same = false
		}
	}
	if same {
		t.Fatalf("distinct addresses produced identical solution polynomials")
	}
}
