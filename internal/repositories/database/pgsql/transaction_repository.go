package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	"github.com/openaims/fxconvert/internal/models"
	"github.com/openaims/fxconvert/internal/utils/mapping"
)

// PgxTransactionRepository implements aid-transaction persistence using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for aid transactions.
func newPgxTransactionRepository(pool PgxPool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, activity_id, description, provider_org, receiver_org,
	value, currency, transaction_date, value_date,
	value_usd, usd_convertible, exchange_rate_used, usd_conversion_date,
	created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.AidTransaction, error) {
	var m models.AidTransaction
	err := row.Scan(
		&m.TransactionID, &m.ActivityID, &m.Description, &m.ProviderOrg, &m.ReceiverOrg,
		&m.Value, &m.Currency, &m.TransactionDate, &m.ValueDate,
		&m.ValueUSD, &m.UsdConvertible, &m.ExchangeRateUsed, &m.UsdConversionDate,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// buildFilterClause translates a TransactionFilter into a WHERE clause and args.
func buildFilterClause(filter portsrepo.TransactionFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Currency != "" {
		add("currency = $%d", strings.ToUpper(filter.Currency))
	}
	if filter.ActivityID != "" {
		add("activity_id = $%d", filter.ActivityID)
	}
	if filter.StartDate != nil {
		add("transaction_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("transaction_date <= $%d", *filter.EndDate)
	}
	if filter.OnlyMissingUSD {
		conds = append(conds, "value_usd IS NULL")
	}
	if filter.OnlyPositiveValue {
		conds = append(conds, "value > 0")
	}

	switch filter.ConversionStatus {
	case domain.ConversionStatusConverted:
		conds = append(conds, "value_usd IS NOT NULL AND currency <> 'USD'")
	case domain.ConversionStatusPending:
		conds = append(conds, "value_usd IS NULL AND usd_convertible = TRUE AND currency <> 'USD'")
	case domain.ConversionStatusUnconvertible:
		conds = append(conds, "usd_convertible = FALSE")
	case domain.ConversionStatusNativeUSD:
		conds = append(conds, "currency = 'USD'")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.AidTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM aid_transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainAidTransaction(*m)
	return &d, nil
}

// ListTransactions retrieves matching transactions, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit, offset int) ([]domain.AidTransaction, error) {
	where, args := buildFilterClause(filter)
	query := fmt.Sprintf(
		`SELECT %s FROM aid_transactions%s ORDER BY transaction_date DESC, transaction_id LIMIT $%d OFFSET $%d;`,
		transactionColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.AidTransaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}

	return mapping.ToDomainAidTransactionSlice(ms), nil
}

// CountTransactions counts matching transactions.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, filter portsrepo.TransactionFilter) (int64, error) {
	where, args := buildFilterClause(filter)
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM aid_transactions`+where+`;`, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// MarkUnconvertible flags a transaction as impossible to convert, touching only
// the convertibility flag and the conversion timestamp.
func (r *PgxTransactionRepository) MarkUnconvertible(ctx context.Context, transactionID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE aid_transactions
		SET usd_convertible = FALSE, usd_conversion_date = $2, updated_at = $2
		WHERE transaction_id = $1;`,
		transactionID, at,
	)
	if err != nil {
		return fmt.Errorf("failed to mark transaction %s unconvertible: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetUSDValue records a successful conversion, overwriting any prior outcome.
func (r *PgxTransactionRepository) SetUSDValue(ctx context.Context, transactionID string, usdAmount, rate decimal.Decimal, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE aid_transactions
		SET value_usd = $2, exchange_rate_used = $3, usd_convertible = TRUE,
		    usd_conversion_date = $4, updated_at = $4
		WHERE transaction_id = $1;`,
		transactionID, usdAmount, rate, at,
	)
	if err != nil {
		return fmt.Errorf("failed to set USD value on transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetConversionStats aggregates conversion-state counts per currency.
func (r *PgxTransactionRepository) GetConversionStats(ctx context.Context, activityID string) ([]domain.CurrencyConversionStats, error) {
	query := `
		SELECT currency,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE value_usd IS NOT NULL AND currency <> 'USD') AS converted,
			COUNT(*) FILTER (WHERE usd_convertible = FALSE) AS unconvertible,
			COUNT(*) FILTER (WHERE value_usd IS NULL AND usd_convertible = TRUE AND currency <> 'USD') AS pending
		FROM aid_transactions`
	var args []interface{}
	if activityID != "" {
		query += ` WHERE activity_id = $1`
		args = append(args, activityID)
	}
	query += ` GROUP BY currency ORDER BY currency;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate conversion stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.CurrencyConversionStats
	for rows.Next() {
		var s domain.CurrencyConversionStats
		if err := rows.Scan(&s.Currency, &s.Total, &s.Converted, &s.Unconvertible, &s.Pending); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading stats rows: %w", err)
	}
	return stats, nil
}
