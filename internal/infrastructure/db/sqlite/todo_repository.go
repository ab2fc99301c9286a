package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yottalab/membership-system/internal/core/domain"
)

type SQLiteTodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{db: db}
}

func (r *SQLiteTodoRepository) List(ctx context.Context) ([]domain.TodoItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, done, audience, sort_order, detail FROM todos ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var result []domain.TodoItem
	for rows.Next() {
		item, err := scanTodo(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteTodoRepository) Find(ctx context.Context, id int64) (*domain.TodoItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, done, audience, sort_order, detail FROM todos WHERE id = ?`, id)
	item, err := scanTodo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &item, nil
}

// Create inserts the item and returns its generated id. With autoOrder the
// sort_order is assigned max(existing)+1 inside the insert transaction.
func (r *SQLiteTodoRepository) Create(ctx context.Context, item domain.TodoItem, autoOrder bool) (int64, error) {
	var id int64
	err := withTx(ctx, r.db, func(ctx context.Context, tx dbtx) error {
		order := item.SortOrder
		if autoOrder {
			if err := tx.QueryRowContext(ctx,
				`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM todos`).Scan(&order); err != nil {
				return fmt.Errorf("next sort_order: %w", err)
			}
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO todos (title, done, audience, sort_order, detail) VALUES (?, ?, ?, ?, ?)`,
			item.Title, item.Done, item.Audience.String(), order, item.Detail)
		if err != nil {
			return fmt.Errorf("insert todo: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQLiteTodoRepository) Update(ctx context.Context, item domain.TodoItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, done = ?, audience = ?, sort_order = ?, detail = ? WHERE id = ?`,
		item.Title, item.Done, item.Audience.String(), item.SortOrder, item.Detail, item.ID)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return requireRow(res, domain.ErrTodoNotFound)
}

// Toggle flips done in the store itself so concurrent toggles cannot lose an
// update.
func (r *SQLiteTodoRepository) Toggle(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE todos SET done = NOT done WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle todo: %w", err)
	}
	return requireRow(res, domain.ErrTodoNotFound)
}

func (r *SQLiteTodoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return requireRow(res, domain.ErrTodoNotFound)
}

func scanTodo(scan func(dest ...any) error) (domain.TodoItem, error) {
	var (
		item     domain.TodoItem
		audience string
	)
	if err := scan(&item.ID, &item.Title, &item.Done, &audience, &item.SortOrder, &item.Detail); err != nil {
		return domain.TodoItem{}, err
	}
	item.Audience = domain.ParseAudience(audience)
	return item, nil
}

// requireRow maps an affected-row count of zero to notFound.
func requireRow(res sql.Result, notFound error) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if ra == 0 {
		return notFound
	}
	return nil
}
