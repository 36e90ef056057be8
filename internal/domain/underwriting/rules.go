package underwriting

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	baselineRiskScore = 50.0
	minRiskScore      = 0.0
	maxRiskScore      = 100.0

	// Verdict cut-offs, compared with > against the clamped score.
	rejectAbove = 75.0
	reviewAbove = 40.0

	minimumCreditScore = 500
	youngApplicantAge  = 23
	largeLoanPrincipal = 1_000_000
)

const (
	ReasonExcellentCredit  = "Excellent credit score."
	ReasonGoodCredit       = "Good credit score."
	ReasonLowCredit        = "Low credit score indicates higher risk."
	ReasonBelowCreditFloor = "Credit score is below minimum threshold."
	ReasonModerateDTI      = "Moderate debt-to-income ratio."
	ReasonHealthyDTI       = "Healthy disposable income."
	ReasonUnemployed       = "Cannot lend to unemployed applicants."
	ReasonStudent          = "Student status increases risk profile."
	ReasonHighAmountForAge = "High loan amount for age group."

	highDTIReasonFormat  = "Total debt obligations (%s%%) exceed 60%% of income."
	creditFloorRiskScore = 95.0
	unemployedRiskScore  = 100.0
)

// Outcome is what a single rule contributes. A terminal outcome carries a full
// decision that replaces everything accumulated so far.
type Outcome struct {
	Delta    float64
	Reason   string
	terminal *DecisionRecord
}

// Adjust adds delta to the running score and records reason.
func Adjust(delta float64, reason string) Outcome {
	return Outcome{Delta: delta, Reason: reason}
}

// Pass leaves the accumulator untouched.
func Pass() Outcome { return Outcome{} }

// Reject ends evaluation with a fixed score and a single reason.
func Reject(score float64, reason string) Outcome {
	return Outcome{terminal: &DecisionRecord{
		Verdict:   VerdictRejected,
		RiskScore: score,
		Reasons:   []string{reason},
	}}
}

// Terminal reports whether the outcome stops evaluation, and the decision it carries.
func (o Outcome) Terminal() (DecisionRecord, bool) {
	if o.terminal == nil {
		return DecisionRecord{}, false
	}
	return *o.terminal, true
}

type Rule struct {
	Name  string
	Apply func(a ApplicantRecord) Outcome
}

// DefaultRules returns the underwriting rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "credit_tier", Apply: creditTier},
		{Name: "credit_floor", Apply: creditFloor},
		{Name: "debt_to_income", Apply: debtToIncome},
		{Name: "employment", Apply: employment},
		{Name: "age_amount", Apply: ageAmount},
	}
}

func creditTier(a ApplicantRecord) Outcome {
	switch {
	case a.CreditScore >= 750:
		return Adjust(-20, ReasonExcellentCredit)
	case a.CreditScore >= 650:
		return Adjust(-10, ReasonGoodCredit)
	case a.CreditScore < 600:
		return Adjust(20, ReasonLowCredit)
	}
	// 600..649 is neutral
	return Pass()
}

func creditFloor(a ApplicantRecord) Outcome {
	if a.CreditScore < minimumCreditScore {
		return Reject(creditFloorRiskScore, ReasonBelowCreditFloor)
	}
	return Pass()
}

func debtToIncome(a ApplicantRecord) Outcome {
	ratio := DebtToIncome(a)
	switch {
	case ratio > 0.60:
		return Adjust(30, fmt.Sprintf(highDTIReasonFormat, FormatPercent(ratio)))
	case ratio > 0.40:
		return Adjust(10, ReasonModerateDTI)
	default:
		return Adjust(-10, ReasonHealthyDTI)
	}
}

func employment(a ApplicantRecord) Outcome {
	switch a.Employment {
	case EmploymentUnemployed:
		return Reject(unemployedRiskScore, ReasonUnemployed)
	case EmploymentStudent:
		return Adjust(10, ReasonStudent)
	}
	return Pass()
}

func ageAmount(a ApplicantRecord) Outcome {
	if a.Age < youngApplicantAge && a.RequestedPrincipal > largeLoanPrincipal {
		return Adjust(10, ReasonHighAmountForAge)
	}
	return Pass()
}

// DebtToIncome is existing obligations plus the estimated new installment,
// divided by monthly income.
func DebtToIncome(a ApplicantRecord) float64 {
	installment := EstimateInstallment(a.RequestedPrincipal, EstimationAnnualRatePercent, a.TenureYears)
	return (a.ExistingMonthlyObligation + installment) / a.MonthlyIncome
}

// FormatPercent renders ratio as a whole percentage, rounding half up
// (0.655 -> "66", 0.645 -> "65").
func FormatPercent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return fmt.Sprintf("%.0f", ratio*100)
	}
	return decimal.NewFromFloat(ratio).Shift(2).Round(0).String()
}
