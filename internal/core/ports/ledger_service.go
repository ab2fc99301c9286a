package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// BulkSetInput is one admin bulk-edit submission for a single user class.
//
// Entries carries checkbox assertions keyed "userID_year_month" (month is the
// 0-based slot); only true values assert a paid month. Keys are parsed from
// the right so user ids may contain underscores. Malformed keys and keys
// referencing unknown users or out-of-window years are skipped individually.
//
// Notes applies to the member class only: every present entry overwrites that
// member's note and stamps its update time.
type BulkSetInput struct {
	Class   domain.UserClass
	Entries map[string]bool
	Notes   map[string]string
}

// LedgerService owns the payment grids and their write-through mirror.
type LedgerService interface {
	// GetYear returns the 12-slot grid, all-false for unknown users or years
	// outside the configured window.
	GetYear(userID string, year int) domain.YearGrid
	// UserGrids returns all in-window grids for one user (copies).
	UserGrids(userID string) map[int]domain.YearGrid
	// ClassGrids returns every user's grids for a class (copies).
	ClassGrids(class domain.UserClass) map[string]map[int]domain.YearGrid
	// BulkSet performs the full-replace edit described on BulkSetInput and
	// persists the union of all four classes as one replace-all write.
	BulkSet(ctx context.Context, input BulkSetInput) error
	// SetNote overwrites one member note and stamps its update time.
	SetNote(ctx context.Context, memberID, body string) error
}
