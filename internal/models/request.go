package models

import (
	"bytes"
	"encoding/json"
)

// NumericInput is a request field sent either as a JSON number or as a
// formatted string such as "120,000". Parsing is left to the service.
type NumericInput struct {
	Raw string
	Set bool
}

// UnmarshalJSON keeps the raw text of strings and numbers alike
func (n *NumericInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = NumericInput{}
		return nil
	}

	n.Set = true
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &n.Raw)
	}
	n.Raw = string(data)
	return nil
}

// MarshalJSON writes the raw text back as a string
func (n NumericInput) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Raw)
}

// Num is shorthand for a set NumericInput
func Num(raw string) NumericInput {
	return NumericInput{Raw: raw, Set: true}
}

// CalculateRequest is the body of an affordability calculation. Amounts are
// currency, percentage fields are percents and RequiredReserves is months.
type CalculateRequest struct {
	AnnualIncome     NumericInput `json:"annualIncome"`
	Assets           NumericInput `json:"assets"`
	MonthlyDebts     NumericInput `json:"monthlyDebts"`
	MaxLTV           NumericInput `json:"maxLTV"`
	PropertyTaxRate  NumericInput `json:"propertyTaxRate"`
	InsuranceRate    NumericInput `json:"insuranceRate"`
	MaxDTI           NumericInput `json:"maxDTI"`
	InterestRate     NumericInput `json:"interestRate"`
	RequiredReserves NumericInput `json:"requiredReserves"`
}

// ReportRequest asks for a calculation to be mailed to Email
type ReportRequest struct {
	CalculateRequest
	Email string `json:"email" validate:"required,email"`
}
