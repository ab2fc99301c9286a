package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yottalab/membership-system/internal/core/domain"
)

type SQLiteNoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *SQLiteNoteRepository {
	return &SQLiteNoteRepository{db: db}
}

func (r *SQLiteNoteRepository) All(ctx context.Context) (map[string]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT member_id, body, updated_at FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Note)
	for rows.Next() {
		var (
			memberID  string
			note      domain.Note
			updatedAt sql.NullString
		)
		if err := rows.Scan(&memberID, &note.Body, &updatedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			if ts, err := time.Parse(time.RFC3339, updatedAt.String); err == nil {
				note.UpdatedAt = &ts
			}
		}
		result[memberID] = note
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteNoteRepository) Upsert(ctx context.Context, memberID string, note domain.Note) error {
	var updatedAt any
	if note.UpdatedAt != nil {
		updatedAt = note.UpdatedAt.Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (member_id, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(member_id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		memberID, note.Body, updatedAt)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}
