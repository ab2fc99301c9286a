package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// AuthRepository persists the admin credential and last-login records.
type AuthRepository interface {
	// AdminCredential returns the stored credential for the given admin id;
	// domain.ErrUserNotFound when the row is absent.
	AdminCredential(ctx context.Context, id string) (string, error)
	UpdateAdminCredential(ctx context.Context, id, credential string) error
	// RecordLogin upserts the per-user last-login row.
	RecordLogin(ctx context.Context, login domain.LastLogin) error
	ListLastLogins(ctx context.Context) ([]domain.LastLogin, error)
}
