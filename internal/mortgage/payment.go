// Package mortgage computes level payments and escrow costs for fixed-rate,
// fully-amortizing mortgages.
package mortgage

import (
	"math"

	"github.com/Dan9191/home-affordability/internal/models"
)

// LoanTermMonths is the amortization term used by MonthlyPayment (30 years).
const LoanTermMonths = 30 * 12

// MonthlyPayment returns the level principal and interest payment for a
// 30-year loan. annualRate must be greater than 0.
func MonthlyPayment(loanAmount, annualRate float64) float64 {
	return AmortizedPayment(loanAmount, annualRate, LoanTermMonths)
}

// AmortizedPayment returns the level payment of a loan repaid over months
// installments at annualRate compounded monthly. Rates too small to move
// 1+r in float64 repay the principal evenly; rates large enough to overflow
// the growth factor pay interest only.
func AmortizedPayment(loanAmount, annualRate float64, months int) float64 {
	r := annualRate / 12
	growth := math.Pow(1+r, float64(months))
	switch {
	case growth == 1:
		return loanAmount / float64(months)
	case math.IsInf(growth, 1):
		return loanAmount * r
	}
	return loanAmount * r * growth / (growth - 1)
}

// EscrowCosts returns the monthly property tax and homeowners insurance
// for a home bought at price.
func EscrowCosts(price, propertyTaxRate, insuranceRate float64) (tax, insurance float64) {
	tax = price * propertyTaxRate / 12
	insurance = price * insuranceRate / 12
	return tax, insurance
}

// TotalMonthlyCost returns the housing payment at price, assuming the loan
// is financed up to the LTV cap.
func TotalMonthlyCost(price float64, policy models.PolicyInputs) float64 {
	loanAmount := price * policy.MaxLTV
	tax, insurance := EscrowCosts(price, policy.PropertyTaxRate, policy.InsuranceRate)
	return MonthlyPayment(loanAmount, policy.InterestRate) + tax + insurance
}
