package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// LedgerRepository persists paid months. Only true slots are stored; a row's
// absence means unpaid.
type LedgerRepository interface {
	All(ctx context.Context) ([]domain.LedgerRow, error)
	// ReplaceAll deletes every ledger row and inserts rows in one transaction.
	ReplaceAll(ctx context.Context, rows []domain.LedgerRow) error
}
