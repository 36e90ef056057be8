package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"magicbank-loan-engine/internal/adapter/validation"
	"magicbank-loan-engine/internal/domain/underwriting"
	"magicbank-loan-engine/internal/usecase/scoring"
)

type scoreFlags struct {
	file string

	name        string
	age         int
	income      float64
	existingEMI float64
	loanAmount  float64
	tenure      float64
	creditScore int
	employment  string
}

func newScoreCmd() *cobra.Command {
	var f scoreFlags

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one loan application and print the decision as JSON",
		Long: `Score reads an application from flags or from a JSON/YAML file and prints
{approval, risk_score, reasons}. A rejection is a normal result; only invalid
input exits non-zero.

Example:
  underwrite score --age 30 --income 5000 --existing-emi 500 \
    --loan-amount 50000 --tenure 5 --credit-score 720 --employment salaried
  underwrite score --file applicant.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				in  scoring.ScoreLoanInput
				err error
			)
			if f.file != "" {
				in, err = readInputFile(f.file)
				if err != nil {
					return err
				}
			} else {
				in = f.input(cmd)
			}
			return runScore(cmd.Context(), cmd.OutOrStdout(), in)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "read the application from a .json, .yaml or .yml file")
	fl.StringVar(&f.name, "name", "", "applicant name")
	fl.IntVar(&f.age, "age", 0, "applicant age (18-70)")
	fl.Float64Var(&f.income, "income", 0, "monthly income")
	fl.Float64Var(&f.existingEMI, "existing-emi", 0, "existing monthly debt obligations")
	fl.Float64Var(&f.loanAmount, "loan-amount", 0, "requested principal")
	fl.Float64Var(&f.tenure, "tenure", 0, "tenure in years (0-30]")
	fl.IntVar(&f.creditScore, "credit-score", 0, "credit score (0-900)")
	fl.StringVar(&f.employment, "employment", "", "salaried, self-employed, student or unemployed")
	cmd.MarkFlagsMutuallyExclusive("file", "age")
	cmd.MarkFlagsMutuallyExclusive("file", "employment")

	return cmd
}

// input sets only the flags the user passed, so omitted values fail "required".
func (f *scoreFlags) input(cmd *cobra.Command) scoring.ScoreLoanInput {
	changed := cmd.Flags().Changed
	in := scoring.ScoreLoanInput{Name: f.name, EmploymentType: f.employment}
	if changed("age") {
		in.Age = &f.age
	}
	if changed("income") {
		in.MonthlyIncome = &f.income
	}
	if changed("existing-emi") {
		in.ExistingEMI = &f.existingEMI
	}
	if changed("loan-amount") {
		in.LoanAmount = &f.loanAmount
	}
	if changed("tenure") {
		in.TenureYears = &f.tenure
	}
	if changed("credit-score") {
		in.CreditScore = &f.creditScore
	}
	return in
}

func readInputFile(path string) (scoring.ScoreLoanInput, error) {
	var in scoring.ScoreLoanInput
	b, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &in)
	case ".json", "":
		err = json.Unmarshal(b, &in)
	default:
		return in, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return in, fmt.Errorf("parse %s: %w", path, err)
	}
	return in, nil
}

func runScore(ctx context.Context, out io.Writer, in scoring.ScoreLoanInput) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validation.NewValidator().Validate(&in); err != nil {
		var msgs []string
		for _, fe := range validation.ToFieldErrors(err) {
			msgs = append(msgs, fe.Field+" "+fe.Message)
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	// decisions go to out; keep logs off stdout
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := scoring.NewUsecase(underwriting.NewEngine(), nil, log)
	dto, err := uc.Score(ctx, in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto)
}
