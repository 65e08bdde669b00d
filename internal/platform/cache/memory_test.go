package cache_test

import (
	"testing"
	"time"

	"github.com/openaims/fxconvert/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateCache_RateRoundTrip(t *testing.T) {
	c := cache.NewMemoryRateCache(time.Minute)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, ok := c.GetRate("EUR", "USD", date)
	assert.False(t, ok)

	c.SetRate("EUR", "USD", date, decimal.NewFromFloat(1.10))

	rate, ok := c.GetRate("EUR", "USD", date)
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(1.10)))

	// Same pair on a different date is a distinct entry.
	_, ok = c.GetRate("EUR", "USD", date.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestMemoryRateCache_SupportedCodes(t *testing.T) {
	c := cache.NewMemoryRateCache(time.Minute)

	_, ok := c.GetSupportedCodes()
	assert.False(t, ok)

	c.SetSupportedCodes([]string{"USD", "EUR", "GBP"})

	codes, ok := c.GetSupportedCodes()
	require.True(t, ok)
	assert.Equal(t, []string{"USD", "EUR", "GBP"}, codes)
}

func TestMemoryRateCache_Expiry(t *testing.T) {
	c := cache.NewMemoryRateCache(10 * time.Millisecond)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	c.SetRate("EUR", "USD", date, decimal.NewFromFloat(1.10))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.GetRate("EUR", "USD", date)
	assert.False(t, ok)
}
