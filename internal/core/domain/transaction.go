package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionStatus classifies where an aid transaction sits in the USD
// conversion lifecycle.
type ConversionStatus string

const (
	ConversionStatusPending       ConversionStatus = "pending"
	ConversionStatusConverted     ConversionStatus = "converted"
	ConversionStatusUnconvertible ConversionStatus = "unconvertible"
	ConversionStatusNativeUSD     ConversionStatus = "native_usd"
)

// AidTransaction is a financial record of an aid activity with an original
// amount in some currency, plus the USD conversion state tracked by this service.
type AidTransaction struct {
	TransactionID string `json:"transactionID"`
	ActivityID    string `json:"activityID"`
	Description   string `json:"description"`
	ProviderOrg   string `json:"providerOrg"`
	ReceiverOrg   string `json:"receiverOrg"`

	Value           decimal.Decimal `json:"value"`
	Currency        string          `json:"currency"`
	TransactionDate time.Time       `json:"transactionDate"`
	// ValueDate, when present, is the IATI value date and takes precedence over
	// TransactionDate for historical-rate lookup.
	ValueDate *time.Time `json:"valueDate,omitempty"`

	ValueUSD          *decimal.Decimal `json:"valueUSD,omitempty"`
	UsdConvertible    bool             `json:"usdConvertible"`
	ExchangeRateUsed  *decimal.Decimal `json:"exchangeRateUsed,omitempty"`
	UsdConversionDate *time.Time       `json:"usdConversionDate,omitempty"`

	AuditFields
}

// NeedsConversion reports whether this transaction still needs a USD value:
// no USD value yet, a non-USD currency, and a strictly positive amount.
func (t *AidTransaction) NeedsConversion() bool {
	return t.ValueUSD == nil &&
		!strings.EqualFold(t.Currency, "USD") &&
		t.Value.IsPositive()
}

// ConversionDate returns the date to use for historical-rate lookup,
// preferring the value date when one is present.
func (t *AidTransaction) ConversionDate() time.Time {
	if t.ValueDate != nil {
		return *t.ValueDate
	}
	return t.TransactionDate
}

// ConversionStatus derives the lifecycle state from the conversion fields.
func (t *AidTransaction) ConversionStatus() ConversionStatus {
	switch {
	case strings.EqualFold(t.Currency, "USD"):
		return ConversionStatusNativeUSD
	case !t.UsdConvertible:
		return ConversionStatusUnconvertible
	case t.ValueUSD != nil:
		return ConversionStatusConverted
	default:
		return ConversionStatusPending
	}
}
