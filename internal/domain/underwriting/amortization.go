package underwriting

import "math"

// EstimationAnnualRatePercent is the nominal rate assumed when estimating the
// installment of the requested loan, independent of any quoted rate.
const EstimationAnnualRatePercent = 10.0

// EstimateInstallment returns the fixed monthly payment for principal borrowed
// at annualRatePercent over years.
//
//	r       = annualRatePercent / 100 / 12
//	n       = years * 12 (may be fractional)
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate splits the principal evenly; years <= 0 yields 0.
func EstimateInstallment(principal, annualRatePercent, years float64) float64 {
	if years <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	n := years * 12
	if r == 0 {
		return principal / n
	}
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}
