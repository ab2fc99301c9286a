package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// AddAccountInput carries an admin add-account request. A nil SortOrder
// assigns max(existing)+1.
type AddAccountInput struct {
	Class      domain.UserClass
	ID         string
	Credential string
	SortOrder  *int
	Equity     string
}

// UpdateAccountInput is a partial update; nil fields keep the stored value.
type UpdateAccountInput struct {
	Class      domain.UserClass
	ID         string
	Credential *string
	SortOrder  *int
	Equity     *string
}

// AccountService defines the per-class account lifecycle. All four classes
// share the contract; hashing behaviour differs per domain.UserClass.Hashed.
type AccountService interface {
	List(ctx context.Context, class domain.UserClass) ([]domain.UserRecord, error)
	// Add is a silent no-op when the id already exists.
	Add(ctx context.Context, input AddAccountInput) error
	Update(ctx context.Context, input UpdateAccountInput) error
	// Delete cascades badges and the note for members.
	Delete(ctx context.Context, class domain.UserClass, id string) error
	// Verify reports whether supplied matches the stored credential.
	// Unknown ids report false without error.
	Verify(ctx context.Context, class domain.UserClass, id, supplied string) (bool, error)
}
