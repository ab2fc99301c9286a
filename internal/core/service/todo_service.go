package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// TodoService manages the shared todo board and audience-based visibility.
type TodoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log}
}

// Add creates a todo. An empty title is rejected; a missing sort order is
// assigned max+1 atomically by the store.
func (s *TodoService) Add(ctx context.Context, input ports.AddTodoInput) (*domain.TodoItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrMalformedInput
	}

	item := domain.TodoItem{
		Title:    title,
		Audience: input.Audience,
		Detail:   strings.TrimSpace(input.Detail),
	}
	autoOrder := input.SortOrder == nil
	if !autoOrder {
		item.SortOrder = *input.SortOrder
	}

	id, err := s.repo.Create(ctx, item, autoOrder)
	if err != nil {
		return nil, fmt.Errorf("add todo: %w", err)
	}
	item.ID = id

	s.log.Info().Int64("id", id).Str("title", title).Msg("todo added")
	return &item, nil
}

// Edit updates a todo in place. An empty title keeps the stored title, a nil
// sort order keeps the stored order, and the done flag is never touched.
func (s *TodoService) Edit(ctx context.Context, input ports.EditTodoInput) error {
	item, err := s.repo.Find(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("edit todo: %w", err)
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		item.Title = title
	}
	item.Audience = input.Audience
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	item.Detail = strings.TrimSpace(input.Detail)

	if err := s.repo.Update(ctx, *item); err != nil {
		return fmt.Errorf("edit todo: %w", err)
	}
	return nil
}

// Toggle flips the done flag atomically in the store.
func (s *TodoService) Toggle(ctx context.Context, id int64) error {
	if err := s.repo.Toggle(ctx, id); err != nil {
		return fmt.Errorf("toggle todo: %w", err)
	}
	return nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	s.log.Info().Int64("id", id).Msg("todo deleted")
	return nil
}

// VisibleTo filters the board down to what one viewer may see. Admins see
// everything.
func (s *TodoService) VisibleTo(ctx context.Context, userID string, class domain.UserClass, isAdmin bool) ([]domain.TodoItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if isAdmin {
		return items, nil
	}

	visible := make([]domain.TodoItem, 0, len(items))
	for _, item := range items {
		if item.Audience.Allows(userID, class) {
			visible = append(visible, item)
		}
	}
	return visible, nil
}
