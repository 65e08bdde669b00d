package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	"github.com/openaims/fxconvert/internal/models"
	"github.com/openaims/fxconvert/internal/utils/mapping"
)

// PgxSupportedCurrencyRepository implements the supported-currency registry using pgxpool.
type PgxSupportedCurrencyRepository struct {
	BaseRepository
}

// newPgxSupportedCurrencyRepository creates a new registry repository.
func newPgxSupportedCurrencyRepository(pool PgxPool) portsrepo.SupportedCurrencyRepositoryWithTx {
	return &PgxSupportedCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupportedCurrencyRepositoryWithTx = (*PgxSupportedCurrencyRepository)(nil)

// ReplaceSupported reconciles the registry in one transaction: every row is
// marked unsupported, then each given currency is upserted as supported.
// Stale codes stay in the table with is_supported=false.
func (r *PgxSupportedCurrencyRepository) ReplaceSupported(ctx context.Context, currencies []domain.SupportedCurrency) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin registry reconcile: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE supported_currencies SET is_supported = FALSE;`); err != nil {
		_ = r.Rollback(ctx, tx)
		return fmt.Errorf("failed to mark currencies unsupported: %w", err)
	}

	upsert := `
		INSERT INTO supported_currencies (code, name, is_supported, last_checked, created_at)
		VALUES ($1, $2, TRUE, $3, $3)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			is_supported = TRUE,
			last_checked = EXCLUDED.last_checked;
	`
	for _, curr := range currencies {
		if _, err := tx.Exec(ctx, upsert, curr.Code, curr.Name, curr.LastChecked); err != nil {
			_ = r.Rollback(ctx, tx)
			return fmt.Errorf("failed to upsert supported currency %s: %w", curr.Code, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit registry reconcile: %w", err)
	}
	return nil
}

// FindByCode retrieves a registry entry by its code.
func (r *PgxSupportedCurrencyRepository) FindByCode(ctx context.Context, code string) (*domain.SupportedCurrency, error) {
	query := `
		SELECT code, name, is_supported, last_checked, created_at
		FROM supported_currencies
		WHERE code = $1;
	`
	var m models.SupportedCurrency
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.Name, &m.IsSupported, &m.LastChecked, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supported currency %s: %w", code, err)
	}

	d := mapping.ToDomainSupportedCurrency(m)
	return &d, nil
}

// ListSupported retrieves all currencies currently marked supported, ordered by code.
func (r *PgxSupportedCurrencyRepository) ListSupported(ctx context.Context) ([]domain.SupportedCurrency, error) {
	query := `
		SELECT code, name, is_supported, last_checked, created_at
		FROM supported_currencies
		WHERE is_supported = TRUE
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list supported currencies: %w", err)
	}
	defer rows.Close()

	var ms []models.SupportedCurrency
	for rows.Next() {
		var m models.SupportedCurrency
		if err := rows.Scan(&m.Code, &m.Name, &m.IsSupported, &m.LastChecked, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supported currency row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading supported currency rows: %w", err)
	}

	return mapping.ToDomainSupportedCurrencySlice(ms), nil
}

// ListSupportedCodes retrieves just the codes currently marked supported.
func (r *PgxSupportedCurrencyRepository) ListSupportedCodes(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code FROM supported_currencies WHERE is_supported = TRUE ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list supported currency codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan currency code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading currency code rows: %w", err)
	}
	return codes, nil
}
