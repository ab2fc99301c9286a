package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/api/metrics"
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// TodoHandler handles the shared todo board: the audience-filtered listing
// for every signed-in user and the admin CRUD.
type TodoHandler struct {
	todos ports.TodoService
}

func NewTodoHandler(todos ports.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List returns the todos visible to the caller. Admins see everything;
// other roles are filtered by each todo's audience.
//
// @Summary      List visible todos
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  listTodosResponse
// @Failure      401  {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	isAdmin := role == domain.RoleAdmin
	var class domain.UserClass
	if !isAdmin {
		if class, err = domain.ParseUserClass(role); err != nil {
			return domain.ErrUnauthorized
		}
	}

	todos, err := h.todos.VisibleTo(c.Request().Context(), userID, class, isAdmin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listTodosResponse{Todos: todos})
}

// Add creates one todo.
//
// @Summary      Add a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      addTodoRequest  true  "Todo details"
// @Success      201   {object}  domain.TodoItem
// @Failure      400   {object}  errorResponse
// @Router       /admin/todos [post]
func (h *TodoHandler) Add(c echo.Context) error {
	var req addTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.todos.Add(c.Request().Context(), ports.AddTodoInput{
		Title:     req.Title,
		Audience:  req.Audience,
		SortOrder: req.SortOrder,
		Detail:    req.Detail,
	})
	if err != nil {
		return err
	}
	metrics.TodoMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, todo)
}

// Edit rewrites one todo. An empty title keeps the stored title so
// detail-only edits do not blank the item.
//
// @Summary      Edit a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int              true  "Todo id"
// @Param        body  body      editTodoRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/todos/{id} [put]
func (h *TodoHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req editTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.todos.Edit(c.Request().Context(), ports.EditTodoInput{
		ID:        id,
		Title:     req.Title,
		Audience:  req.Audience,
		SortOrder: req.SortOrder,
		Detail:    req.Detail,
	})
	if err != nil {
		return err
	}
	metrics.TodoMutationsTotal.WithLabelValues("edit").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "todo updated"})
}

// Toggle flips one todo's done flag.
//
// @Summary      Toggle a todo
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id  path      int  true  "Todo id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.todos.Toggle(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.TodoMutationsTotal.WithLabelValues("toggle").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "todo toggled"})
}

// Delete removes one todo.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id  path      int  true  "Todo id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.todos.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.TodoMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "todo deleted"})
}
