// Package cache provides the in-memory TTL cache used as a shortcut in front
// of the durable stores. It is never authoritative; clearing it loses nothing.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/openaims/fxconvert/internal/core/ports"
	"github.com/shopspring/decimal"
)

const (
	keyPrefix         = "exchange_rate"
	supportedCodesKey = keyPrefix + "_supported_currencies"
)

// MemoryRateCache implements ports.RateCache on top of patrickmn/go-cache.
type MemoryRateCache struct {
	c *gocache.Cache
}

// NewMemoryRateCache creates a cache whose entries expire after ttl.
func NewMemoryRateCache(ttl time.Duration) *MemoryRateCache {
	return &MemoryRateCache{
		c: gocache.New(ttl, 10*time.Minute),
	}
}

var _ ports.RateCache = (*MemoryRateCache)(nil)

func rateKey(fromCurrency, toCurrency string, date time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%s", keyPrefix, fromCurrency, toCurrency, date.Format("2006-01-02"))
}

// GetRate returns the cached rate for a (from, to, date) triple, if present.
func (m *MemoryRateCache) GetRate(fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, bool) {
	v, ok := m.c.Get(rateKey(fromCurrency, toCurrency, date))
	if !ok {
		return decimal.Decimal{}, false
	}
	rate, ok := v.(decimal.Decimal)
	return rate, ok
}

// SetRate caches a rate for a (from, to, date) triple.
func (m *MemoryRateCache) SetRate(fromCurrency, toCurrency string, date time.Time, rate decimal.Decimal) {
	m.c.SetDefault(rateKey(fromCurrency, toCurrency, date), rate)
}

// GetSupportedCodes returns the cached supported-currency list, if present.
func (m *MemoryRateCache) GetSupportedCodes() ([]string, bool) {
	v, ok := m.c.Get(supportedCodesKey)
	if !ok {
		return nil, false
	}
	codes, ok := v.([]string)
	return codes, ok
}

// SetSupportedCodes caches the supported-currency list.
func (m *MemoryRateCache) SetSupportedCodes(codes []string) {
	m.c.SetDefault(supportedCodesKey, codes)
}
