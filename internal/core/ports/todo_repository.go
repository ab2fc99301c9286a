package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// TodoRepository persists the shared todo board. Ids are store-generated.
type TodoRepository interface {
	// List returns every todo ordered by (sort_order, id).
	List(ctx context.Context) ([]domain.TodoItem, error)
	Find(ctx context.Context, id int64) (*domain.TodoItem, error)
	// Create inserts item and returns the assigned id. When autoOrder is true
	// the stored sort_order is assigned max(existing)+1 atomically.
	Create(ctx context.Context, item domain.TodoItem, autoOrder bool) (int64, error)
	Update(ctx context.Context, item domain.TodoItem) error
	// Toggle flips done in place; domain.ErrTodoNotFound when id is unknown.
	Toggle(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
