package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// lastLoginLayout matches the historical wall-clock format already present
// in exported data.
const lastLoginLayout = "2006-01-02 15:04:05"

type SQLiteAuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *SQLiteAuthRepository {
	return &SQLiteAuthRepository{db: db}
}

func (r *SQLiteAuthRepository) AdminCredential(ctx context.Context, id string) (string, error) {
	var credential string
	err := r.db.QueryRowContext(ctx,
		`SELECT credential FROM admin_users WHERE id = ?`, id).Scan(&credential)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("find admin: %w", err)
	}
	return credential, nil
}

func (r *SQLiteAuthRepository) UpdateAdminCredential(ctx context.Context, id, credential string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET credential = ? WHERE id = ?`, credential, id)
	if err != nil {
		return fmt.Errorf("update admin credential: %w", err)
	}
	return requireRow(res, domain.ErrUserNotFound)
}

func (r *SQLiteAuthRepository) RecordLogin(ctx context.Context, login domain.LastLogin) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO last_logins (user_id, at, ip) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET at = excluded.at, ip = excluded.ip`,
		login.UserID, login.At.Format(lastLoginLayout), login.IP)
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

func (r *SQLiteAuthRepository) ListLastLogins(ctx context.Context) ([]domain.LastLogin, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, at, ip FROM last_logins ORDER BY at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list last logins: %w", err)
	}
	defer rows.Close()

	var result []domain.LastLogin
	for rows.Next() {
		var (
			login domain.LastLogin
			at    string
		)
		if err := rows.Scan(&login.UserID, &at, &login.IP); err != nil {
			return nil, err
		}
		if ts, err := time.ParseInLocation(lastLoginLayout, at, time.Local); err == nil {
			login.At = ts
		}
		result = append(result, login)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
