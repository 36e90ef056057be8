package scoring

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"magicbank-loan-engine/internal/domain/underwriting"
)

// ----- test doubles -----

type fakeRecorder struct {
	verdicts []string
	faults   []string
}

func (f *fakeRecorder) ObserveDecision(verdict string, _ float64, _ time.Time) {
	f.verdicts = append(f.verdicts, verdict)
}

func (f *fakeRecorder) IncPreconditionFault(field string) { f.faults = append(f.faults, field) }

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func ptr[T any](v T) *T { return &v }

func validInput() ScoreLoanInput {
	return ScoreLoanInput{
		Name:           "John Doe",
		Age:            ptr(30),
		MonthlyIncome:  ptr(5000.0),
		ExistingEMI:    ptr(500.0),
		LoanAmount:     ptr(50000.0),
		TenureYears:    ptr(5.0),
		CreditScore:    ptr(720),
		EmploymentType: "salaried",
	}
}

// ----- tests -----

func TestScore_Approved(t *testing.T) {
	rec := &fakeRecorder{}
	u := NewUsecase(underwriting.NewEngine(), rec, quietLogger())

	dto, err := u.Score(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if dto.Approval != "Approved" || dto.RiskScore != 30 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if len(dto.Reasons) != 2 || dto.Reasons[0] != "Good credit score." || dto.Reasons[1] != "Healthy disposable income." {
		t.Fatalf("unexpected reasons: %v", dto.Reasons)
	}
	if len(rec.verdicts) != 1 || rec.verdicts[0] != "Approved" {
		t.Fatalf("recorder verdicts = %v", rec.verdicts)
	}
}

func TestScore_HardRejectIsNotAnError(t *testing.T) {
	u := NewUsecase(underwriting.NewEngine(), nil, quietLogger())
	in := validInput()
	in.CreditScore = ptr(450)

	dto, err := u.Score(context.Background(), in)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if dto.Approval != "Rejected" || dto.RiskScore != 95 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if len(dto.Reasons) != 1 || dto.Reasons[0] != "Credit score is below minimum threshold." {
		t.Fatalf("unexpected reasons: %v", dto.Reasons)
	}
}

func TestScore_ManualReviewWireString(t *testing.T) {
	u := NewUsecase(underwriting.NewEngine(), nil, nil)
	in := validInput()
	in.EmploymentType = "student"
	in.CreditScore = ptr(620)

	dto, err := u.Score(context.Background(), in)
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	// 50 - 10 (healthy dti) + 10 (student)
	if dto.Approval != "Needs Manual Review" || dto.RiskScore != 50 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestScore_PreconditionFault(t *testing.T) {
	rec := &fakeRecorder{}
	u := NewUsecase(underwriting.NewEngine(), rec, quietLogger())
	in := validInput()
	in.MonthlyIncome = ptr(0.0)

	dto, err := u.Score(context.Background(), in)
	if err == nil {
		t.Fatalf("expected error, got dto %+v", dto)
	}
	if !errors.Is(err, underwriting.ErrPrecondition) {
		t.Fatalf("error = %v, want ErrPrecondition", err)
	}
	if dto != nil {
		t.Fatalf("no decision expected on fault, got %+v", dto)
	}
	if len(rec.faults) != 1 || rec.faults[0] != "monthly_income" {
		t.Fatalf("recorder faults = %v", rec.faults)
	}
	if len(rec.verdicts) != 0 {
		t.Fatalf("no verdict should be recorded, got %v", rec.verdicts)
	}
}

func TestScore_MissingFieldIsPreconditionFault(t *testing.T) {
	u := NewUsecase(underwriting.NewEngine(), nil, quietLogger())
	in := validInput()
	in.CreditScore = nil

	_, err := u.Score(context.Background(), in)
	var pe *underwriting.PreconditionError
	if !errors.As(err, &pe) || pe.Field != "credit_score" {
		t.Fatalf("error = %v, want precondition on credit_score", err)
	}
}

func TestToApplicant_CarriesName(t *testing.T) {
	a, err := validInput().ToApplicant()
	if err != nil {
		t.Fatalf("ToApplicant: %v", err)
	}
	if a.Name != "John Doe" || a.Employment != underwriting.EmploymentSalaried || a.RequestedPrincipal != 50000 {
		t.Fatalf("unexpected record: %+v", a)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestIDFrom(ctx); got != "abc" {
		t.Fatalf("RequestIDFrom = %q, want abc", got)
	}
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Fatalf("RequestIDFrom(empty) = %q", got)
	}
}
