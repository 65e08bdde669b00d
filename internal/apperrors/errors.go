package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// A duplicate-key hit on the rate cache is benign: someone else already cached the entry.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnsupportedCurrency indicates the currency is not in the supported registry.
// Never retried; the owning record is marked unconvertible.
var ErrUnsupportedCurrency = errors.New("currency not supported")

// ErrRateUnavailable indicates the upstream API is reachable but has no usable rate
// for the requested currency and date.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrFutureDate indicates a rate was requested for a date after today.
var ErrFutureDate = errors.New("cannot fetch exchange rate for a future date")
