package epoch

import "testing"

func TestInitForEpochDeterministic(t *testing.T) {
	a := InitForEpoch(Info(42), 7)
	b := InitForEpoch(Info(42), 7)
	if len(a.Poly()) != len(b.Poly()) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Poly()), len(b.Poly()))
	}
	for i := range a.Poly() {
		if !a.Poly()[i].Equal(&b.Poly()[i]) {
			t.Fatalf("coefficient %d differs between identical calls", i)
		}
	}
}

func TestInitForEpochDegree(t *testing.T) {
	ch := InitForEpoch(Info(1), 10)
	if len(ch.Poly()) != 11 {
		t.Fatalf("expected 11 coefficients for degree 10, got %d", len(ch.Poly()))
	}
}

func TestInitForEpochVariesByEpoch(t *testing.T) {
	a := InitForEpoch(Info(1), 4)
	b := InitForEpoch(Info(2), 4)
	same := true
	for i := range a.Poly() {
		if !a.Poly()[i].Equal(&b.Poly()[i]) {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct epochs produced identical challenge polynomials")
	}
}

func TestInfoBytesLittleEndian(t *testing.T) {
	b := Info(1).Bytes()
	if b != [8]byte{1, 0, 0, 0, 0, 0, 0, 0} {
		t.Fatalf("unexpected encoding: %v", b)
	}
}
