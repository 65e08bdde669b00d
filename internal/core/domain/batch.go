package domain

// Outcome status values for a single record within a conversion run.
const (
	OutcomeConverted = "converted"
	OutcomeSkipped   = "skipped"
	OutcomeError     = "error"
	// OutcomeWouldConvert is reported by dry runs for records that a real run
	// would convert.
	OutcomeWouldConvert = "convert"
)

// Skip reasons surfaced in per-record details.
const (
	ReasonAlreadyUSD       = "transaction is already in USD"
	ReasonAlreadyConverted = "already converted"
	ReasonUnsupported      = "currency not supported"
	ReasonNoRate           = "conversion failed - no exchange rate available"
)

// BatchOptions control a bulk conversion run.
type BatchOptions struct {
	// Force reprocesses records that already hold a USD value.
	Force bool
	// DryRun classifies records without persisting any state change.
	DryRun bool
	// BatchSize is the chunk size used when paging through matching records.
	// Chunking bounds memory and drives progress reporting only; it has no
	// effect on the outcome.
	BatchSize int
	// CollectDetails gathers a per-record outcome list in the result.
	CollectDetails bool
}

// RecordOutcome is the per-record detail entry of a conversion run.
type RecordOutcome struct {
	TransactionID string `json:"transactionID"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

// BatchResult aggregates a conversion run.
type BatchResult struct {
	Processed int             `json:"processed"`
	Converted int             `json:"converted"`
	Skipped   int             `json:"skipped"`
	Errors    int             `json:"errors"`
	Details   []RecordOutcome `json:"details,omitempty"`
}

// CurrencyConversionStats is the per-currency slice of conversion statistics.
type CurrencyConversionStats struct {
	Currency      string `json:"currency"`
	Total         int64  `json:"total"`
	Converted     int64  `json:"converted"`
	Unconvertible int64  `json:"unconvertible"`
	Pending       int64  `json:"pending"`
	IsSupported   bool   `json:"isSupported"`
}

// ConversionStats is an aggregate snapshot of conversion state across a set of
// transactions.
type ConversionStats struct {
	TotalTransactions         int64                              `json:"totalTransactions"`
	ConvertedTransactions     int64                              `json:"convertedTransactions"`
	UnconvertibleTransactions int64                              `json:"unconvertibleTransactions"`
	PendingTransactions       int64                              `json:"pendingTransactions"`
	USDTransactions           int64                              `json:"usdTransactions"`
	ConversionRatePercent     float64                            `json:"conversionRatePercent"`
	CurrencyBreakdown         map[string]CurrencyConversionStats `json:"currencyBreakdown"`
}
