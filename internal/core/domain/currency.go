package domain

import "time"

// SupportedCurrency is a registry entry for a currency code that the upstream
// rate API can (or can no longer) convert to USD.
// Stale codes are kept with IsSupported=false rather than deleted.
type SupportedCurrency struct {
	Code        string    `json:"code"` // ISO 4217, uppercase
	Name        string    `json:"name"`
	IsSupported bool      `json:"isSupported"`
	LastChecked time.Time `json:"lastChecked"`
	CreatedAt   time.Time `json:"createdAt"`
}
