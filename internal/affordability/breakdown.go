package affordability

import "github.com/Dan9191/home-affordability/internal/models"

// Breakdown splits the monthly payment into principal and interest, property
// tax and homeowners insurance. Shares are zero when nothing is owed.
func Breakdown(res models.AffordabilityResult) []models.PaymentShare {
	parts := []models.PaymentShare{
		{Label: "Principal & Interest", Amount: res.PrincipalAndInterest},
		{Label: "Property Tax", Amount: res.PropertyTax},
		{Label: "Homeowners Insurance", Amount: res.HomeownersInsurance},
	}
	for i := range parts {
		parts[i].Share = ratio(parts[i].Amount, res.MonthlyPayment)
	}
	return parts
}
