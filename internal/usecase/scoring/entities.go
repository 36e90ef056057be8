package scoring

import (
	"encoding/json"
	"fmt"
	"math"
)

// ScoreLoanInput is the wire shape of a loan application. Numeric fields are
// pointers so that 0 is a legal value while absence still fails "required".
type ScoreLoanInput struct {
	Name           string   `json:"name,omitempty"  yaml:"name"`
	Age            *int     `json:"age"             yaml:"age"             validate:"required,gte=18,lte=70"`
	MonthlyIncome  *float64 `json:"monthly_income"  yaml:"monthly_income"  validate:"required,gt=0"`
	ExistingEMI    *float64 `json:"existing_emi"    yaml:"existing_emi"    validate:"required,gte=0"`
	LoanAmount     *float64 `json:"loan_amount"     yaml:"loan_amount"     validate:"required,gt=0"`
	TenureYears    *float64 `json:"tenure_years"    yaml:"tenure_years"    validate:"required,gt=0,lte=30"`
	CreditScore    *int     `json:"credit_score"    yaml:"credit_score"    validate:"required,gte=0,lte=900"`
	EmploymentType string   `json:"employment_type" yaml:"employment_type" validate:"required,employment"`
}

type DecisionDTO struct {
	Approval  string   `json:"approval"`
	RiskScore float64  `json:"risk_score"`
	Reasons   []string `json:"reasons"`
}

// UnmarshalJSON accepts whole-number floats (30.0) for the integer fields.
func (in *ScoreLoanInput) UnmarshalJSON(b []byte) error {
	type plain ScoreLoanInput
	aux := struct {
		*plain
		Age         *float64 `json:"age"`
		CreditScore *float64 `json:"credit_score"`
	}{plain: (*plain)(in)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	var err error
	if in.Age, err = wholeNumber("age", aux.Age); err != nil {
		return err
	}
	if in.CreditScore, err = wholeNumber("credit_score", aux.CreditScore); err != nil {
		return err
	}
	return nil
}

func wholeNumber(field string, v *float64) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if *v != math.Trunc(*v) || math.Abs(*v) > math.MaxInt32 {
		return nil, fmt.Errorf("%s must be an integer, got %v", field, *v)
	}
	n := int(*v)
	return &n, nil
}
