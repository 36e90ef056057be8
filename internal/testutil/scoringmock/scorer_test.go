package scoringmock

import (
	"context"
	"errors"
	"testing"

	"magicbank-loan-engine/internal/usecase/scoring"
)

func TestScorer_Score(t *testing.T) {
	ctx := context.Background()
	in := scoring.ScoreLoanInput{Name: "x"}
	want := &scoring.DecisionDTO{Approval: "Approved"}

	called := false
	m := &Scorer{
		ScoreFn: func(gotCtx context.Context, got scoring.ScoreLoanInput) (*scoring.DecisionDTO, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Score ctx mismatch")
			}
			if got.Name != in.Name {
				t.Fatalf("Score arg mismatch")
			}
			return want, nil
		},
	}
	got, err := m.Score(ctx, in)
	if err != nil || got != want {
		t.Fatalf("Score: got %v, %v", got, err)
	}
	if !called {
		t.Fatalf("ScoreFn not called")
	}

	// Default (nil func) → canceled
	m = &Scorer{}
	if _, err := m.Score(ctx, in); !errors.Is(err, context.Canceled) {
		t.Fatalf("Score default: want context.Canceled, got %v", err)
	}
}
