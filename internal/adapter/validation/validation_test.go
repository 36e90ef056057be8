package validation

import (
	"errors"
	"strings"
	"testing"

	"magicbank-loan-engine/internal/usecase/scoring"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T { return &v }

func validInput() scoring.ScoreLoanInput {
	return scoring.ScoreLoanInput{
		Age:            ptr(30),
		MonthlyIncome:  ptr(5000.0),
		ExistingEMI:    ptr(0.0),
		LoanAmount:     ptr(50000.0),
		TenureYears:    ptr(5.0),
		CreditScore:    ptr(0),
		EmploymentType: "salaried",
	}
}

func TestScoreLoanInput_Valid(t *testing.T) {
	cv := NewValidator()
	// zero obligation and zero credit score are legal values, not missing ones
	if err := cv.Validate(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", ToFieldErrors(err))
	}
}

func TestEmploymentValidation(t *testing.T) {
	cv := NewValidator()

	for _, s := range []string{"salaried", "self-employed", "student", "unemployed"} {
		in := validInput()
		in.EmploymentType = s
		if err := cv.Validate(in); err != nil {
			t.Fatalf("expected %q valid, got %v", s, err)
		}
	}
	for _, s := range []string{"Salaried", "retired", "self employed"} {
		in := validInput()
		in.EmploymentType = s
		err := cv.Validate(in)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "employment_type", "must be one of") {
			t.Fatalf("expected employment message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredFieldsUseWireNames(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(scoring.ScoreLoanInput{})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	for _, f := range []string{"age", "monthly_income", "existing_emi", "loan_amount", "tenure_years", "credit_score", "employment_type"} {
		if !containsFieldMsg(fe, f, "is required") {
			t.Fatalf("missing 'is required' for %s: %+v", f, fe)
		}
	}
}

func TestBoundsMapping(t *testing.T) {
	cv := NewValidator()

	in := validInput()
	in.Age = ptr(17)
	in.MonthlyIncome = ptr(0.0)
	in.ExistingEMI = ptr(-1.0)
	in.TenureYears = ptr(31.0)
	in.CreditScore = ptr(901)

	err := cv.Validate(in)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "age", "greater than or equal to 18") {
		t.Fatalf("missing gte message for age: %+v", fe)
	}
	if !containsFieldMsg(fe, "monthly_income", "greater than 0") {
		t.Fatalf("missing gt message for monthly_income: %+v", fe)
	}
	if !containsFieldMsg(fe, "existing_emi", "greater than or equal to 0") {
		t.Fatalf("missing gte message for existing_emi: %+v", fe)
	}
	if !containsFieldMsg(fe, "tenure_years", "less than or equal to 30") {
		t.Fatalf("missing lte message for tenure_years: %+v", fe)
	}
	if !containsFieldMsg(fe, "credit_score", "less than or equal to 900") {
		t.Fatalf("missing lte message for credit_score: %+v", fe)
	}
}

func TestNameIsNotConstrained(t *testing.T) {
	cv := NewValidator()

	for _, name := range []string{"", strings.Repeat("x", 5000)} {
		in := validInput()
		in.Name = name
		if err := cv.Validate(in); err != nil {
			t.Fatalf("name of length %d must be accepted, got %v", len(name), ToFieldErrors(err))
		}
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
