package underwriting

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPrecondition marks an applicant record that should never have reached
	// the engine. It is a fault, not a business decision.
	ErrPrecondition = errors.New("applicant record violates engine preconditions")
)

type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrPrecondition.Error(), e.Field, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// CheckPreconditions verifies the invariants the validation layer is expected
// to guarantee. The first violation found is returned.
func CheckPreconditions(a ApplicantRecord) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"monthly_income", a.MonthlyIncome},
		{"existing_emi", a.ExistingMonthlyObligation},
		{"loan_amount", a.RequestedPrincipal},
		{"tenure_years", a.TenureYears},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &PreconditionError{Field: f.name, Reason: "must be finite"}
		}
	}

	switch {
	case a.Age < 18 || a.Age > 70:
		return &PreconditionError{Field: "age", Reason: "must be between 18 and 70"}
	case a.MonthlyIncome <= 0:
		return &PreconditionError{Field: "monthly_income", Reason: "must be positive"}
	case a.ExistingMonthlyObligation < 0:
		return &PreconditionError{Field: "existing_emi", Reason: "must not be negative"}
	case a.RequestedPrincipal <= 0:
		return &PreconditionError{Field: "loan_amount", Reason: "must be positive"}
	case a.TenureYears <= 0 || a.TenureYears > 30:
		return &PreconditionError{Field: "tenure_years", Reason: "must be in (0, 30]"}
	case a.CreditScore < 0 || a.CreditScore > 900:
		return &PreconditionError{Field: "credit_score", Reason: "must be between 0 and 900"}
	case !a.Employment.Valid():
		return &PreconditionError{Field: "employment_type", Reason: fmt.Sprintf("unknown category %q", a.Employment)}
	}
	return nil
}
