package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CachedRate is a durable exchange-rate cache entry: how many USD one unit of
// Currency was worth on Date. Entries are unique on (currency, date) and are
// never evicted; a historical rate for a given date does not change once learned.
type CachedRate struct {
	Currency  string          `json:"currency"`
	Date      time.Time       `json:"date"`
	RateToUSD decimal.Decimal `json:"rateToUSD"`
	AuditFields
}

// Conversion is the outcome of a successful USD conversion.
type Conversion struct {
	AmountUSD decimal.Decimal `json:"amountUSD"`
	Rate      decimal.Decimal `json:"rate"`
}
