package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// AddTodoInput carries an admin add-todo request. A nil SortOrder assigns
// max(existing)+1.
type AddTodoInput struct {
	Title     string
	Audience  domain.Audience
	SortOrder *int
	Detail    string
}

// EditTodoInput carries an admin edit. An empty Title preserves the stored
// title (detail-only edits); a nil SortOrder keeps the stored order.
type EditTodoInput struct {
	ID        int64
	Title     string
	Audience  domain.Audience
	SortOrder *int
	Detail    string
}

// TodoService defines the todo board use cases.
type TodoService interface {
	Add(ctx context.Context, input AddTodoInput) (*domain.TodoItem, error)
	Edit(ctx context.Context, input EditTodoInput) error
	Toggle(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	// VisibleTo lists the todos the given user may see; admins see all.
	VisibleTo(ctx context.Context, userID string, class domain.UserClass, isAdmin bool) ([]domain.TodoItem, error)
}
