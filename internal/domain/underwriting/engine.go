package underwriting

// Engine scores applicant records against an ordered rule list. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	rules []Rule
}

func NewEngine() *Engine { return &Engine{rules: DefaultRules()} }

// NewEngineWithRules builds an engine over a custom rule order.
func NewEngineWithRules(rules ...Rule) *Engine {
	rs := make([]Rule, len(rules))
	copy(rs, rules)
	return &Engine{rules: rs}
}

// Evaluate applies the rules in order, folding each outcome into a local
// accumulator. A terminal outcome is returned as-is. Records that break the
// engine's preconditions yield an error wrapping ErrPrecondition and no decision.
func (e *Engine) Evaluate(a ApplicantRecord) (DecisionRecord, error) {
	if err := CheckPreconditions(a); err != nil {
		return DecisionRecord{}, err
	}

	score := baselineRiskScore
	reasons := []string{}
	for _, r := range e.rules {
		out := r.Apply(a)
		if d, ok := out.Terminal(); ok {
			return d, nil
		}
		score += out.Delta
		if out.Reason != "" {
			reasons = append(reasons, out.Reason)
		}
	}

	score = clamp(score, minRiskScore, maxRiskScore)
	return DecisionRecord{
		Verdict:   VerdictFor(score),
		RiskScore: score,
		Reasons:   reasons,
	}, nil
}

// VerdictFor maps a clamped risk score to a verdict.
func VerdictFor(score float64) Verdict {
	switch {
	case score > rejectAbove:
		return VerdictRejected
	case score > reviewAbove:
		return VerdictNeedsManualReview
	default:
		return VerdictApproved
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
