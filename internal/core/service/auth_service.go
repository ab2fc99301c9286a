package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// AuthService implements login for the admin account and every user class,
// plus admin password management.
type AuthService struct {
	repo      ports.AuthRepository
	accounts  ports.AccountService
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, accounts ports.AccountService, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login checks the admin account first, then each user class in order. Every
// failure mode reports the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := s.resolveRole(ctx, username, input.Password)
	if err != nil {
		return nil, err
	}

	// login history is best effort
	if err := s.repo.RecordLogin(ctx, domain.LastLogin{UserID: username, At: time.Now(), IP: input.IP}); err != nil {
		s.log.Warn().Err(err).Str("user", username).Msg("failed to record login")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.generateToken(username, role, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Str("user", username).Str("role", role).Msg("login succeeded")
	return &ports.LoginResult{Token: token, UserID: username, Role: role, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) resolveRole(ctx context.Context, username, password string) (string, error) {
	if username == domain.AdminUsername {
		stored, err := s.repo.AdminCredential(ctx, username)
		switch {
		case err == nil:
			if domain.VerifyCredential(password, stored) {
				return domain.RoleAdmin, nil
			}
		case !errors.Is(err, domain.ErrUserNotFound):
			return "", fmt.Errorf("load admin credential: %w", err)
		}
	}

	for _, class := range domain.AllClasses {
		ok, err := s.accounts.Verify(ctx, class, username, password)
		if err != nil {
			return "", fmt.Errorf("verify %s credential: %w", class, err)
		}
		if ok {
			return string(class), nil
		}
	}
	return "", domain.ErrInvalidCredentials
}

// ChangeAdminPassword verifies the current password, enforces the minimum
// length and confirmation match, and stores the new password hashed.
func (s *AuthService) ChangeAdminPassword(ctx context.Context, input ports.ChangeAdminPasswordInput) error {
	stored, err := s.repo.AdminCredential(ctx, domain.AdminUsername)
	if err != nil {
		return fmt.Errorf("load admin credential: %w", err)
	}
	if !domain.VerifyCredential(input.Current, stored) {
		return domain.ErrInvalidCredentials
	}
	if len(input.Next) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if input.Next != input.Confirm {
		return domain.ErrPasswordMismatch
	}

	hashed, err := domain.HashCredential(input.Next)
	if err != nil {
		return fmt.Errorf("hash credential: %w", err)
	}
	if err := s.repo.UpdateAdminCredential(ctx, domain.AdminUsername, hashed); err != nil {
		return fmt.Errorf("store admin credential: %w", err)
	}

	s.log.Info().Msg("admin password changed")
	return nil
}

func (s *AuthService) ListLastLogins(ctx context.Context) ([]domain.LastLogin, error) {
	return s.repo.ListLastLogins(ctx)
}

func (s *AuthService) generateToken(userID, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
