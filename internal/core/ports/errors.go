package ports

import "errors"

// ErrBadAPIResponse marks a malformed or unexpected upstream API response
// (client-error status, unparseable body, missing rates field). It is a
// terminal failure: retries are reserved for transport faults, server errors
// and rate limiting.
var ErrBadAPIResponse = errors.New("unexpected rate API response")
