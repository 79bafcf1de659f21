package models

// PolicyInputs holds the numeric inputs of an affordability calculation.
// Ratios and rates are fractions (0.95, not 95).
type PolicyInputs struct {
	AnnualIncome     float64 `json:"annualIncome" validate:"gte=0"`
	TotalAssets      float64 `json:"assets" validate:"gte=0"`
	MonthlyDebts     float64 `json:"monthlyDebts" validate:"gte=0"`
	MaxLTV           float64 `json:"maxLTV" validate:"gt=0,lte=1"`
	PropertyTaxRate  float64 `json:"propertyTaxRate" validate:"gte=0"`
	InsuranceRate    float64 `json:"insuranceRate" validate:"gte=0"`
	MaxDTI           float64 `json:"maxDTI" validate:"gte=0"`
	InterestRate     float64 `json:"interestRate" validate:"gt=0"`
	RequiredReserves float64 `json:"requiredReserves" validate:"gte=0"`
}

// MonthlyIncome returns gross income per month
func (p PolicyInputs) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}

// AffordabilityResult is the breakdown at the maximum affordable price
type AffordabilityResult struct {
	PurchasePrice        float64 `json:"purchasePrice"`
	DownPayment          float64 `json:"downPayment"`
	LoanAmount           float64 `json:"loanAmount"`
	MonthlyPayment       float64 `json:"monthlyPayment"`
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	HomeownersInsurance  float64 `json:"homeownersInsurance"`
	PropertyTax          float64 `json:"propertyTax"`
	DebtToIncomeRatio    float64 `json:"debtToIncomeRatio"`
	LTVRatio             float64 `json:"ltvRatio"`
	ReservedAssets       float64 `json:"reservedAssets"`
	AvailableDownPayment float64 `json:"availableDownPayment"`
	InterestRate         float64 `json:"interestRate"`
}
