package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// AccountPatch is a partial update: nil fields leave the stored value
// untouched.
type AccountPatch struct {
	Credential *string
	SortOrder  *int
	Equity     *string
}

// AccountRepository defines persistence operations over the four user-class
// tables. Every method takes the class explicitly; implementations map it to
// the backing table.
type AccountRepository interface {
	// List returns all records of a class ordered by (sort_order, id).
	List(ctx context.Context, class domain.UserClass) ([]domain.UserRecord, error)
	Find(ctx context.Context, class domain.UserClass, id string) (*domain.UserRecord, error)
	// Create inserts a record. When autoOrder is true the stored sort_order is
	// assigned max(existing)+1 atomically and rec.SortOrder is ignored.
	// A primary-key conflict returns domain.ErrDuplicateUser.
	Create(ctx context.Context, class domain.UserClass, rec domain.UserRecord, autoOrder bool) error
	Update(ctx context.Context, class domain.UserClass, id string, patch AccountPatch) error
	// Delete removes the record together with its ledger rows, and for members
	// also the note and badges, in one transaction.
	Delete(ctx context.Context, class domain.UserClass, id string) error
}

// NoteRepository persists the per-member annotation.
type NoteRepository interface {
	All(ctx context.Context) (map[string]domain.Note, error)
	Upsert(ctx context.Context, memberID string, note domain.Note) error
}
