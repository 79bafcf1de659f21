package service

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Dan9191/home-affordability/internal/config"
	"github.com/Dan9191/home-affordability/internal/models"
)

// parseNumber reads a plain or thousands-separated number
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

type fieldSpec struct {
	name     string
	input    models.NumericInput
	fallback *float64 // nil means the field is required
	divisor  float64  // 100 for percentages
	dst      *float64
}

// ParseInputs converts a request into solver inputs: strips thousands
// separators, turns percentages into fractions and fills omitted policy
// fields from policy. Malformed numbers are reported before a non-positive
// interest rate.
func ParseInputs(req models.CalculateRequest, policy config.Policy, v *validator.Validate) (models.PolicyInputs, error) {
	var in models.PolicyInputs

	fields := []fieldSpec{
		{"annualIncome", req.AnnualIncome, nil, 1, &in.AnnualIncome},
		{"assets", req.Assets, nil, 1, &in.TotalAssets},
		{"monthlyDebts", req.MonthlyDebts, nil, 1, &in.MonthlyDebts},
		{"maxLTV", req.MaxLTV, &policy.MaxLTV, 100, &in.MaxLTV},
		{"propertyTaxRate", req.PropertyTaxRate, &policy.PropertyTaxRate, 100, &in.PropertyTaxRate},
		{"insuranceRate", req.InsuranceRate, &policy.InsuranceRate, 100, &in.InsuranceRate},
		{"maxDTI", req.MaxDTI, &policy.MaxDTI, 100, &in.MaxDTI},
		{"interestRate", req.InterestRate, &policy.InterestRate, 100, &in.InterestRate},
		{"requiredReserves", req.RequiredReserves, &policy.RequiredReserves, 1, &in.RequiredReserves},
	}

	for _, f := range fields {
		raw, ok := 0.0, false
		switch {
		case f.input.Set:
			raw, ok = parseNumber(f.input.Raw)
		case f.fallback != nil:
			raw, ok = *f.fallback, true
		}
		if !ok {
			return models.PolicyInputs{}, &InputError{Field: f.name, Err: ErrInvalidNumber}
		}
		*f.dst = raw / f.divisor
	}

	if in.InterestRate <= 0 {
		return models.PolicyInputs{}, &InputError{Field: "interestRate", Err: ErrNonPositiveRate}
	}

	if err := v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return models.PolicyInputs{}, &InputError{Field: verrs[0].Field(), Err: ErrOutOfRange}
		}
		return models.PolicyInputs{}, err
	}

	return in, nil
}

// NewValidator returns a validator reporting fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
