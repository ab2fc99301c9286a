package handler

import "github.com/yottalab/membership-system/internal/core/domain"

// Audience travels in its legacy string form ("all", "members", "partners"
// or a comma-joined id list); domain.Audience decodes it.
type addTodoRequest struct {
	Title     string          `json:"title" validate:"required"`
	Audience  domain.Audience `json:"audience"`
	SortOrder *int            `json:"sort_order"`
	Detail    string          `json:"detail"`
}

type editTodoRequest struct {
	Title     string          `json:"title"`
	Audience  domain.Audience `json:"audience"`
	SortOrder *int            `json:"sort_order"`
	Detail    string          `json:"detail"`
}

type listTodosResponse struct {
	Todos []domain.TodoItem `json:"todos"`
}
