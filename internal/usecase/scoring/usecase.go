package scoring

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"magicbank-loan-engine/internal/domain/underwriting"
)

// Recorder receives one observation per scoring attempt.
type Recorder interface {
	ObserveDecision(verdict string, riskScore float64, start time.Time)
	IncPreconditionFault(field string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveDecision(string, float64, time.Time) {}
func (noopRecorder) IncPreconditionFault(string)                {}

type Usecase struct {
	engine *underwriting.Engine
	rec    Recorder
	log    *slog.Logger
}

// NewUsecase: rec and log may be nil.
func NewUsecase(e *underwriting.Engine, rec Recorder, log *slog.Logger) *Usecase {
	if rec == nil {
		rec = noopRecorder{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{engine: e, rec: rec, log: log}
}

func (u *Usecase) Score(ctx context.Context, in ScoreLoanInput) (*DecisionDTO, error) {
	start := time.Now()

	a, err := in.ToApplicant()
	if err != nil {
		return nil, u.fault(ctx, err)
	}
	d, err := u.engine.Evaluate(a)
	if err != nil {
		return nil, u.fault(ctx, err)
	}

	u.rec.ObserveDecision(string(d.Verdict), d.RiskScore, start)
	u.log.InfoContext(ctx, "loan scored",
		"request_id", RequestIDFrom(ctx),
		"verdict", string(d.Verdict),
		"risk_score", d.RiskScore,
		"reasons", len(d.Reasons),
	)
	return &DecisionDTO{
		Approval:  string(d.Verdict),
		RiskScore: d.RiskScore,
		Reasons:   d.Reasons,
	}, nil
}

func (u *Usecase) fault(ctx context.Context, err error) error {
	var pe *underwriting.PreconditionError
	if errors.As(err, &pe) {
		u.rec.IncPreconditionFault(pe.Field)
	}
	u.log.WarnContext(ctx, "scoring fault", "request_id", RequestIDFrom(ctx), "error", err)
	return err
}

// ToApplicant converts validated input into the engine's record. Missing
// required fields are reported as precondition faults.
func (in ScoreLoanInput) ToApplicant() (underwriting.ApplicantRecord, error) {
	missing := func(field string) error {
		return &underwriting.PreconditionError{Field: field, Reason: "is missing"}
	}
	switch {
	case in.Age == nil:
		return underwriting.ApplicantRecord{}, missing("age")
	case in.MonthlyIncome == nil:
		return underwriting.ApplicantRecord{}, missing("monthly_income")
	case in.ExistingEMI == nil:
		return underwriting.ApplicantRecord{}, missing("existing_emi")
	case in.LoanAmount == nil:
		return underwriting.ApplicantRecord{}, missing("loan_amount")
	case in.TenureYears == nil:
		return underwriting.ApplicantRecord{}, missing("tenure_years")
	case in.CreditScore == nil:
		return underwriting.ApplicantRecord{}, missing("credit_score")
	}
	return underwriting.ApplicantRecord{
		Name:                      in.Name,
		Age:                       *in.Age,
		MonthlyIncome:             *in.MonthlyIncome,
		ExistingMonthlyObligation: *in.ExistingEMI,
		RequestedPrincipal:        *in.LoanAmount,
		TenureYears:               *in.TenureYears,
		CreditScore:               *in.CreditScore,
		Employment:                underwriting.EmploymentCategory(in.EmploymentType),
	}, nil
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
