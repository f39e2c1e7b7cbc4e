package accumulator

import (
	"crypto/rand"
	"testing"

	"github.com/giuliop/coinbase-puzzle/epoch"
	"github.com/giuliop/coinbase-puzzle/kzg"
	"github.com/giuliop/coinbase-puzzle/prover"
	"github.com/giuliop/coinbase-puzzle/setup"
)

func testKeys(t *testing.T, degree uint64) *kzg.ProvingKey {
	t.Helper()
	srs, err := setup.GenerateSRS(4*degree, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateSRS: %v", err)
	}
	pk, _, err := setup.Trim(srs, 2*degree)
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	return pk
}

func TestAccumulatePreservesOrder(t *testing.T) {
	const degree = 5
	pk := testKeys(t, degree)
	info := epoch.Info(1)
	ch := epoch.InitForEpoch(info, degree)

	var solutions []prover.Solution
	for i := uint64(0); i < 4; i++ {
		var addr prover.Address
		addr[0] = byte(i + 1)
		sol, err := prover.Prove(pk, info, ch, addr, i)
		if err != nil {
			t.Fatalf("Prove(%d): %v", i, err)
		}
		solutions = append(solutions, sol)
	}

	combined, err := Accumulate(pk, info, ch, solutions)
	if err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	if len(combined.Individual) != len(solutions) {
		t.Fatalf("expected %d retained, got %d", len(solutions), len(combined.Individual))
	}
	for i, s := range solutions {
		if combined.Individual[i].Nonce != s.Nonce || combined.Individual[i].Address != s.Address {
			t.Fatalf("retained solution %d does not match input order", i)
		}
	}
}

func TestAccumulateEmptyListIsStructurallyValid(t *testing.T) {
	const degree = 5
	pk := testKeys(t, degree)
	info := epoch.Info(1)
	ch := epoch.InitForEpoch(info, degree)

	combined, err := Accumulate(pk, info, ch, nil)
	if err != nil {
		t.Fatalf("Accumulate(nil): %v", err)
	}
	if len(combined.Individual) != 0 {
		t.Fatalf("expected no retained solutions for an empty input list")
	}
}

func TestAccumulateDiscardsInvalidSolutions(t *testing.T) {
	const degree = 5
	pk := testKeys(t, degree)
	info := epoch.Info(1)
	ch := epoch.InitForEpoch(info, degree)

	var addr prover.Address
	sol, err := prover.Prove(pk, info, ch, addr, 1)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	// Corrupt the proof so the KZG check fails.
	sol.Proof.Point.X.SetUint64(1)
	sol.Proof.Point.Y.SetUint64(1)

	combined, err := Accumulate(pk, info, ch, []prover.Solution{sol})
	if err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	if len(combined.Individual) != 0 {
		t.Fatalf("expected the corrupted solution to be discarded, got %d retained",
			len(combined.Individual))
	}
}

func TestAccumulateDifficultyFilter(t *testing.T) {
	const degree = 5
	pk := testKeys(t, degree)
	info := epoch.Info(1)
	ch := epoch.InitForEpoch(info, degree)

	var addr prover.Address
	sol, err := prover.Prove(pk, info, ch, addr, 1)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	combined, err := Accumulate(pk, info, ch, []prover.Solution{sol},
		WithDifficultyFilter(func(kzg.Commitment) bool { return false }))
	if err != nil {
		t.Fatalf("Accumulate: %v", err)
	}
	if len(combined.Individual) != 0 {
		t.Fatalf("expected the difficulty filter to reject the only solution")
	}
}
