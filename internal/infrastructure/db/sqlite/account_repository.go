package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// classTables maps each user class to its backing table. Queries interpolate
// table names only through this map, never from request input.
var classTables = map[domain.UserClass]string{
	domain.ClassMember:   "members",
	domain.ClassPartner:  "partners",
	domain.ClassBacker:   "backers",
	domain.ClassCustomer: "customers",
}

func tableFor(class domain.UserClass) (string, error) {
	table, ok := classTables[class]
	if !ok {
		return "", domain.ErrUnknownUserClass
	}
	return table, nil
}

type SQLiteAccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{db: db}
}

func (r *SQLiteAccountRepository) List(ctx context.Context, class domain.UserClass) ([]domain.UserRecord, error) {
	table, err := tableFor(class)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, credential, sort_order, equity FROM %s ORDER BY sort_order, id`, table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var result []domain.UserRecord
	for rows.Next() {
		var rec domain.UserRecord
		if err := rows.Scan(&rec.ID, &rec.Credential, &rec.SortOrder, &rec.Equity); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteAccountRepository) Find(ctx context.Context, class domain.UserClass, id string) (*domain.UserRecord, error) {
	table, err := tableFor(class)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, credential, sort_order, equity FROM %s WHERE id = ?`, table)
	rec := &domain.UserRecord{}
	err = r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Credential, &rec.SortOrder, &rec.Equity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find in %s: %w", table, err)
	}
	return rec, nil
}

// Create inserts a record. With autoOrder the sort_order is read and assigned
// inside the insert transaction, so concurrent creates cannot collide.
func (r *SQLiteAccountRepository) Create(ctx context.Context, class domain.UserClass, rec domain.UserRecord, autoOrder bool) error {
	table, err := tableFor(class)
	if err != nil {
		return err
	}

	return withTx(ctx, r.db, func(ctx context.Context, tx dbtx) error {
		order := rec.SortOrder
		if autoOrder {
			query := fmt.Sprintf(`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM %s`, table)
			if err := tx.QueryRowContext(ctx, query).Scan(&order); err != nil {
				return fmt.Errorf("next sort_order in %s: %w", table, err)
			}
		}

		query := fmt.Sprintf(`INSERT OR IGNORE INTO %s (id, credential, sort_order, equity) VALUES (?, ?, ?, ?)`, table)
		res, err := tx.ExecContext(ctx, query, rec.ID, rec.Credential, order, rec.Equity)
		if err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if ra == 0 {
			return domain.ErrDuplicateUser
		}
		return nil
	})
}

func (r *SQLiteAccountRepository) Update(ctx context.Context, class domain.UserClass, id string, patch ports.AccountPatch) error {
	table, err := tableFor(class)
	if err != nil {
		return err
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if patch.Credential != nil {
		sets = append(sets, "credential = ?")
		args = append(args, *patch.Credential)
	}
	if patch.SortOrder != nil {
		sets = append(sets, "sort_order = ?")
		args = append(args, *patch.SortOrder)
	}
	if patch.Equity != nil {
		sets = append(sets, "equity = ?")
		args = append(args, *patch.Equity)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, table, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if ra == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the account row, the user's ledger rows, and for members
// the note and badges, all in one transaction.
func (r *SQLiteAccountRepository) Delete(ctx context.Context, class domain.UserClass, id string) error {
	table, err := tableFor(class)
	if err != nil {
		return err
	}

	return withTx(ctx, r.db, func(ctx context.Context, tx dbtx) error {
		query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if ra == 0 {
			return domain.ErrUserNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM ledger WHERE user_id = ?`, id); err != nil {
			return fmt.Errorf("delete ledger rows: %w", err)
		}
		if class == domain.ClassMember {
			if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE member_id = ?`, id); err != nil {
				return fmt.Errorf("delete note: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM badges WHERE member_id = ?`, id); err != nil {
				return fmt.Errorf("delete badges: %w", err)
			}
		}
		return nil
	})
}
