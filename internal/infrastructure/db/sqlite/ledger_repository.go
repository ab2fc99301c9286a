package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yottalab/membership-system/internal/core/domain"
)

type SQLiteLedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *SQLiteLedgerRepository {
	return &SQLiteLedgerRepository{db: db}
}

func (r *SQLiteLedgerRepository) All(ctx context.Context) ([]domain.LedgerRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, year, month FROM ledger`)
	if err != nil {
		return nil, fmt.Errorf("select ledger: %w", err)
	}
	defer rows.Close()

	var result []domain.LedgerRow
	for rows.Next() {
		var row domain.LedgerRow
		if err := rows.Scan(&row.UserID, &row.Year, &row.Month); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceAll swaps the entire ledger for the given rows in one transaction.
func (r *SQLiteLedgerRepository) ReplaceAll(ctx context.Context, rows []domain.LedgerRow) error {
	return withTx(ctx, r.db, func(ctx context.Context, tx dbtx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM ledger`); err != nil {
			return fmt.Errorf("clear ledger: %w", err)
		}
		for _, row := range rows {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO ledger (user_id, year, month) VALUES (?, ?, ?)`,
				row.UserID, row.Year, row.Month)
			if err != nil {
				return fmt.Errorf("insert ledger row: %w", err)
			}
		}
		return nil
	})
}
