package ports

import (
	"context"
	"time"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// LoginInput carries one login attempt. IP is recorded on success.
type LoginInput struct {
	Username string
	Password string
	IP       string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// ChangeAdminPasswordInput carries an admin password change request.
type ChangeAdminPasswordInput struct {
	Current string
	Next    string
	Confirm string
}

// AuthService authenticates users and manages the admin credential.
type AuthService interface {
	// Login checks admin first, then each user class in the fixed order; the
	// first match wins. Failures are reported uniformly as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	ChangeAdminPassword(ctx context.Context, input ChangeAdminPasswordInput) error
	ListLastLogins(ctx context.Context) ([]domain.LastLogin, error)
}
