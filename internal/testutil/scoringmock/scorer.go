package scoringmock

import (
	"context"

	"magicbank-loan-engine/internal/usecase/scoring"
)

// Scorer is a function-backed mock for the transports' scoring dependency.
type Scorer struct {
	ScoreFn func(ctx context.Context, in scoring.ScoreLoanInput) (*scoring.DecisionDTO, error)
}

func (m *Scorer) Score(ctx context.Context, in scoring.ScoreLoanInput) (*scoring.DecisionDTO, error) {
	if m.ScoreFn != nil {
		return m.ScoreFn(ctx, in)
	}
	return nil, context.Canceled
}
