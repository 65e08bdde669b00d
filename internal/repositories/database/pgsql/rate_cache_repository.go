package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	"github.com/openaims/fxconvert/internal/models"
	"github.com/openaims/fxconvert/internal/utils/mapping"
)

// uniqueViolation is the Postgres error code for duplicate-key inserts.
const uniqueViolation = "23505"

// PgxRateCacheRepository implements the durable rate cache using pgxpool.
type PgxRateCacheRepository struct {
	BaseRepository
}

// newPgxRateCacheRepository creates a new repository for cached exchange rates.
func newPgxRateCacheRepository(pool PgxPool) portsrepo.RateCacheRepositoryWithTx {
	return &PgxRateCacheRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateCacheRepositoryWithTx = (*PgxRateCacheRepository)(nil)

// UpsertRate inserts a rate for (currency, date), overwriting an existing row.
// Safe to call repeatedly; concurrent writers race benignly (last upsert wins).
func (r *PgxRateCacheRepository) UpsertRate(ctx context.Context, currency string, date time.Time, rate decimal.Decimal) error {
	now := time.Now()
	query := `
		INSERT INTO exchange_rate_cache (currency, date, rate_to_usd, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (currency, date) DO UPDATE SET
			rate_to_usd = EXCLUDED.rate_to_usd,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query, currency, date, rate, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to upsert rate for %s on %s: %w", currency, date.Format("2006-01-02"), err)
	}
	return nil
}

// FindRate retrieves the cached rate for an exact (currency, date) pair.
func (r *PgxRateCacheRepository) FindRate(ctx context.Context, currency string, date time.Time) (*domain.CachedRate, error) {
	query := `
		SELECT currency, date, rate_to_usd, created_at, updated_at
		FROM exchange_rate_cache
		WHERE currency = $1 AND date = $2;
	`
	var modelRate models.ExchangeRateCache
	err := r.Pool.QueryRow(ctx, query, currency, date).Scan(
		&modelRate.Currency,
		&modelRate.Date,
		&modelRate.RateToUSD,
		&modelRate.CreatedAt,
		&modelRate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate for %s on %s: %w", currency, date.Format("2006-01-02"), err)
	}

	domainRate := mapping.ToDomainCachedRate(modelRate)
	return &domainRate, nil
}

// ListRates retrieves cached rates for a currency within [start, end], ordered by date.
func (r *PgxRateCacheRepository) ListRates(ctx context.Context, currency string, start, end time.Time) ([]domain.CachedRate, error) {
	query := `
		SELECT currency, date, rate_to_usd, created_at, updated_at
		FROM exchange_rate_cache
		WHERE currency = $1 AND date >= $2 AND date <= $3
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, currency, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for %s: %w", currency, err)
	}
	defer rows.Close()

	var modelRates []models.ExchangeRateCache
	for rows.Next() {
		var m models.ExchangeRateCache
		if err := rows.Scan(&m.Currency, &m.Date, &m.RateToUSD, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}
		modelRates = append(modelRates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading rate rows: %w", err)
	}

	return mapping.ToDomainCachedRateSlice(modelRates), nil
}
