package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the lending-policy values applied when a request leaves a
// field empty. Values are in the units the API accepts: percentages for
// rates and ratios, months for reserves.
type Policy struct {
	MaxLTV           float64 `yaml:"max_ltv"`
	PropertyTaxRate  float64 `yaml:"property_tax_rate"`
	InsuranceRate    float64 `yaml:"insurance_rate"`
	MaxDTI           float64 `yaml:"max_dti"`
	InterestRate     float64 `yaml:"interest_rate"`
	RequiredReserves float64 `yaml:"required_reserves"`
}

// DefaultPolicy returns the stock lending policy
func DefaultPolicy() Policy {
	return Policy{
		MaxLTV:           95,
		PropertyTaxRate:  1.8,
		InsuranceRate:    0.5,
		MaxDTI:           36,
		InterestRate:     4,
		RequiredReserves: 6,
	}
}

// LoadPolicy reads a YAML policy file. Keys missing from the file keep their
// DefaultPolicy values.
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	policy := DefaultPolicy()
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}
	return policy, nil
}
