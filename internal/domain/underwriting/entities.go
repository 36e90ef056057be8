package underwriting

import "fmt"

type EmploymentCategory string

const (
	EmploymentSalaried     EmploymentCategory = "salaried"
	EmploymentSelfEmployed EmploymentCategory = "self-employed"
	EmploymentStudent      EmploymentCategory = "student"
	EmploymentUnemployed   EmploymentCategory = "unemployed"
)

// Valid reports whether c is one of the known employment categories.
func (c EmploymentCategory) Valid() bool {
	switch c {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentStudent, EmploymentUnemployed:
		return true
	}
	return false
}

func ParseEmploymentCategory(s string) (EmploymentCategory, error) {
	c := EmploymentCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown employment category %q", s)
	}
	return c, nil
}

type Verdict string

const (
	VerdictApproved          Verdict = "Approved"
	VerdictRejected          Verdict = "Rejected"
	VerdictNeedsManualReview Verdict = "Needs Manual Review"
)

// ApplicantRecord is a validated loan application. Name is carried through and
// never inspected by the rules.
type ApplicantRecord struct {
	Name                      string
	Age                       int
	MonthlyIncome             float64
	ExistingMonthlyObligation float64
	RequestedPrincipal        float64
	TenureYears               float64
	CreditScore               int
	Employment                EmploymentCategory
}

// DecisionRecord is the outcome of one evaluation. RiskScore is within [0, 100]
// and Reasons are in the order the rules fired.
type DecisionRecord struct {
	Verdict   Verdict
	RiskScore float64
	Reasons   []string
}
