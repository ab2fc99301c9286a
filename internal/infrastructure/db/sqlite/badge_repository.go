package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yottalab/membership-system/internal/core/domain"
)

type SQLiteBadgeRepository struct {
	db *sql.DB
}

func NewBadgeRepository(db *sql.DB) *SQLiteBadgeRepository {
	return &SQLiteBadgeRepository{db: db}
}

func (r *SQLiteBadgeRepository) List(ctx context.Context) ([]domain.Badge, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, member_id, mission_name, icon_type FROM badges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	var result []domain.Badge
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.ID, &b.MemberID, &b.MissionName, &b.IconType); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteBadgeRepository) Find(ctx context.Context, id int64) (*domain.Badge, error) {
	b := &domain.Badge{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, member_id, mission_name, icon_type FROM badges WHERE id = ?`, id).
		Scan(&b.ID, &b.MemberID, &b.MissionName, &b.IconType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBadgeNotFound
		}
		return nil, fmt.Errorf("find badge: %w", err)
	}
	return b, nil
}

func (r *SQLiteBadgeRepository) Create(ctx context.Context, b domain.Badge) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO badges (member_id, mission_name, icon_type) VALUES (?, ?, ?)`,
		b.MemberID, b.MissionName, b.IconType)
	if err != nil {
		return 0, fmt.Errorf("insert badge: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func (r *SQLiteBadgeRepository) Update(ctx context.Context, b domain.Badge) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE badges SET mission_name = ?, icon_type = ? WHERE id = ?`,
		b.MissionName, b.IconType, b.ID)
	if err != nil {
		return fmt.Errorf("update badge: %w", err)
	}
	return requireRow(res, domain.ErrBadgeNotFound)
}

func (r *SQLiteBadgeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM badges WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete badge: %w", err)
	}
	return requireRow(res, domain.ErrBadgeNotFound)
}
