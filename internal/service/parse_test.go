package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/home-affordability/internal/config"
	"github.com/Dan9191/home-affordability/internal/models"
)

func fullRequest() models.CalculateRequest {
	return models.CalculateRequest{
		AnnualIncome:     models.Num("120,000"),
		Assets:           models.Num("50,000"),
		MonthlyDebts:     models.Num("500"),
		MaxLTV:           models.Num("95"),
		PropertyTaxRate:  models.Num("1.8"),
		InsuranceRate:    models.Num("0.5"),
		MaxDTI:           models.Num("36"),
		InterestRate:     models.Num("4"),
		RequiredReserves: models.Num("6"),
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"120000", 120000, true},
		{"120,000", 120000, true},
		{" 1,234,567.89 ", 1234567.89, true},
		{"4.5", 4.5, true},
		{"0", 0, true},
		{"-250", -250, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1e400", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseNumber(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInputs(t *testing.T) {
	in, err := ParseInputs(fullRequest(), config.DefaultPolicy(), NewValidator())
	require.NoError(t, err)

	assert.Equal(t, 120000.0, in.AnnualIncome)
	assert.Equal(t, 50000.0, in.TotalAssets)
	assert.Equal(t, 500.0, in.MonthlyDebts)
	assert.InDelta(t, 0.95, in.MaxLTV, 1e-12)
	assert.InDelta(t, 0.018, in.PropertyTaxRate, 1e-12)
	assert.InDelta(t, 0.005, in.InsuranceRate, 1e-12)
	assert.InDelta(t, 0.36, in.MaxDTI, 1e-12)
	assert.InDelta(t, 0.04, in.InterestRate, 1e-12)
	assert.Equal(t, 6.0, in.RequiredReserves)
}

func TestParseInputs_PolicyDefaults(t *testing.T) {
	req := models.CalculateRequest{
		AnnualIncome: models.Num("90000"),
		Assets:       models.Num("40000"),
		MonthlyDebts: models.Num("0"),
	}
	policy := config.DefaultPolicy()
	policy.InterestRate = 6.5

	in, err := ParseInputs(req, policy, NewValidator())
	require.NoError(t, err)

	assert.InDelta(t, 0.95, in.MaxLTV, 1e-12)
	assert.InDelta(t, 0.065, in.InterestRate, 1e-12)
	assert.Equal(t, 6.0, in.RequiredReserves)
}

func TestParseInputs_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CalculateRequest)
		wantField string
		wantErr   error
	}{
		{"missing income", func(r *models.CalculateRequest) { r.AnnualIncome = models.NumericInput{} }, "annualIncome", ErrInvalidNumber},
		{"text assets", func(r *models.CalculateRequest) { r.Assets = models.Num("lots") }, "assets", ErrInvalidNumber},
		{"empty debts", func(r *models.CalculateRequest) { r.MonthlyDebts = models.Num("") }, "monthlyDebts", ErrInvalidNumber},
		{"malformed ltv", func(r *models.CalculateRequest) { r.MaxLTV = models.Num("95%") }, "maxLTV", ErrInvalidNumber},
		{"zero rate", func(r *models.CalculateRequest) { r.InterestRate = models.Num("0") }, "interestRate", ErrNonPositiveRate},
		{"negative rate", func(r *models.CalculateRequest) { r.InterestRate = models.Num("-1.5") }, "interestRate", ErrNonPositiveRate},
		{"bad number beats bad rate", func(r *models.CalculateRequest) {
			r.InterestRate = models.Num("0")
			r.AnnualIncome = models.Num("x")
		}, "annualIncome", ErrInvalidNumber},
		{"ltv above 100", func(r *models.CalculateRequest) { r.MaxLTV = models.Num("101") }, "maxLTV", ErrOutOfRange},
		{"zero ltv", func(r *models.CalculateRequest) { r.MaxLTV = models.Num("0") }, "maxLTV", ErrOutOfRange},
		{"negative income", func(r *models.CalculateRequest) { r.AnnualIncome = models.Num("-1") }, "annualIncome", ErrOutOfRange},
		{"negative reserves", func(r *models.CalculateRequest) { r.RequiredReserves = models.Num("-2") }, "requiredReserves", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fullRequest()
			tt.mutate(&req)

			_, err := ParseInputs(req, config.DefaultPolicy(), NewValidator())

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantField, inputErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
