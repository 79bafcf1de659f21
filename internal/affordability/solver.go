// Package affordability finds the highest purchase price a borrower can
// carry under a debt-to-income cap and a reserve-adjusted loan-to-value cap.
//
// The search prices every trial loan at exactly price*MaxLTV. The final
// breakdown instead finances price minus the down payment the borrower can
// actually fund, capped at the LTV-implied amount. Both meet at the converged
// boundary, where the available down payment equals the required one.
package affordability

import (
	"math"

	"github.com/Dan9191/home-affordability/internal/models"
	"github.com/Dan9191/home-affordability/internal/mortgage"
)

// DefaultUpperBound is the highest purchase price the search considers.
// Affordable prices above it are truncated to it.
const DefaultUpperBound int64 = 10_000_000

// Solver runs the affordability search over [0, UpperBound].
type Solver struct {
	UpperBound int64
}

// NewSolver returns a solver bounded at upperBound, or DefaultUpperBound when
// upperBound is not positive.
func NewSolver(upperBound int64) *Solver {
	if upperBound <= 0 {
		upperBound = DefaultUpperBound
	}
	return &Solver{UpperBound: upperBound}
}

// Calculate solves in with the default bound.
func Calculate(in models.PolicyInputs) models.AffordabilityResult {
	return NewSolver(DefaultUpperBound).Calculate(in)
}

// Calculate returns the breakdown at the maximum feasible integer price.
// Inputs are expected to be finite with InterestRate > 0; degenerate inputs
// yield a zero purchase price rather than an error.
func (s *Solver) Calculate(in models.PolicyInputs) models.AffordabilityResult {
	return finalize(s.MaxPurchasePrice(in), in)
}

// MaxPurchasePrice binary-searches the largest feasible price. low is always
// feasible (or 0) and high infeasible (or the bound).
func (s *Solver) MaxPurchasePrice(in models.PolicyInputs) int64 {
	budget := monthlyBudget(in)

	var low, high, price int64 = 0, s.UpperBound, 0
	for high-low > 1 {
		mid := low + (high-low)/2
		if feasible(float64(mid), budget, in) {
			price = mid
			low = mid
		} else {
			high = mid
		}
	}
	return price
}

// monthlyBudget is what remains of the DTI allowance after existing debts.
func monthlyBudget(in models.PolicyInputs) float64 {
	return in.MaxDTI*in.MonthlyIncome() - in.MonthlyDebts
}

func feasible(price, budget float64, in models.PolicyInputs) bool {
	payment := mortgage.TotalMonthlyCost(price, in)
	reserved := payment * in.RequiredReserves
	available := math.Max(in.TotalAssets-reserved, 0)
	required := price * (1 - in.MaxLTV)

	return payment <= budget && available >= required
}

func finalize(price int64, in models.PolicyInputs) models.AffordabilityResult {
	purchasePrice := float64(price)

	reserved := mortgage.TotalMonthlyCost(purchasePrice, in) * in.RequiredReserves
	downPayment := math.Min(purchasePrice*(1-in.MaxLTV), math.Max(in.TotalAssets-reserved, 0))
	loanAmount := purchasePrice - downPayment

	principalAndInterest := mortgage.MonthlyPayment(loanAmount, in.InterestRate)
	tax, insurance := mortgage.EscrowCosts(purchasePrice, in.PropertyTaxRate, in.InsuranceRate)
	monthlyPayment := principalAndInterest + tax + insurance

	return models.AffordabilityResult{
		PurchasePrice:        purchasePrice,
		DownPayment:          downPayment,
		LoanAmount:           loanAmount,
		MonthlyPayment:       monthlyPayment,
		PrincipalAndInterest: principalAndInterest,
		HomeownersInsurance:  insurance,
		PropertyTax:          tax,
		DebtToIncomeRatio:    ratio(in.MonthlyDebts+monthlyPayment, in.MonthlyIncome()),
		LTVRatio:             ratio(loanAmount, purchasePrice),
		ReservedAssets:       reserved,
		AvailableDownPayment: downPayment,
		InterestRate:         in.InterestRate,
	}
}

// ratio guards the zero denominator so results stay JSON-encodable.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
