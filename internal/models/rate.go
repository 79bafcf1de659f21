package models

import "time"

// KeyRate is the central bank key rate plus the bank margin, in percent
type KeyRate struct {
	Rate      float64   `json:"key_rate"`
	BaseRate  float64   `json:"base_rate"`
	Margin    float64   `json:"margin"`
	FetchedAt time.Time `json:"fetched_at"`
}
