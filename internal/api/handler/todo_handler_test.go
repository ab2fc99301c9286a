package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

type stubTodoService struct {
	addFn       func(ctx context.Context, input ports.AddTodoInput) (*domain.TodoItem, error)
	editFn      func(ctx context.Context, input ports.EditTodoInput) error
	toggleFn    func(ctx context.Context, id int64) error
	deleteFn    func(ctx context.Context, id int64) error
	visibleToFn func(ctx context.Context, userID string, class domain.UserClass, isAdmin bool) ([]domain.TodoItem, error)
}

func (s *stubTodoService) Add(ctx context.Context, input ports.AddTodoInput) (*domain.TodoItem, error) {
	return s.addFn(ctx, input)
}

func (s *stubTodoService) Edit(ctx context.Context, input ports.EditTodoInput) error {
	return s.editFn(ctx, input)
}

func (s *stubTodoService) Toggle(ctx context.Context, id int64) error {
	return s.toggleFn(ctx, id)
}

func (s *stubTodoService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTodoService) VisibleTo(ctx context.Context, userID string, class domain.UserClass, isAdmin bool) ([]domain.TodoItem, error) {
	return s.visibleToFn(ctx, userID, class, isAdmin)
}

func TestTodoHandler_List_Admin(t *testing.T) {
	e := echo.New()
	stub := &stubTodoService{
		visibleToFn: func(ctx context.Context, userID string, class domain.UserClass, isAdmin bool) ([]domain.TodoItem, error) {
			if userID != "admin" || !isAdmin {
				t.Fatalf("unexpected viewer: %s admin=%v", userID, isAdmin)
			}
			return []domain.TodoItem{{ID: 1, Title: "board item"}}, nil
		},
	}
	handler := NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin")
	c.Set("role", domain.RoleAdmin)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	todos, ok := resp["todos"].([]any)
	if !ok || len(todos) != 1 {
		t.Fatalf("unexpected todos payload: %+v", resp)
	}
}

func TestTodoHandler_List_MemberClass(t *testing.T) {
	e := echo.New()
	stub := &stubTodoService{
		visibleToFn: func(ctx context.Context, userID string, class domain.UserClass, isAdmin bool) ([]domain.TodoItem, error) {
			if userID != "integlab" || class != domain.ClassMember || isAdmin {
				t.Fatalf("unexpected viewer: %s/%s admin=%v", userID, class, isAdmin)
			}
			return nil, nil
		},
	}
	handler := NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "integlab")
	c.Set("role", "member")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTodoHandler_List_MissingClaims(t *testing.T) {
	e := echo.New()
	handler := NewTodoHandler(&stubTodoService{})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestTodoHandler_List_UnknownRole(t *testing.T) {
	e := echo.New()
	handler := NewTodoHandler(&stubTodoService{})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "x")
	c.Set("role", "superuser")

	if err := handler.List(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTodoHandler_Add_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubTodoService{
		addFn: func(ctx context.Context, input ports.AddTodoInput) (*domain.TodoItem, error) {
			if input.Title != "renew lease" {
				t.Fatalf("unexpected title: %q", input.Title)
			}
			if input.Audience.Kind != domain.AudienceMembers {
				t.Fatalf("legacy audience string not decoded: %+v", input.Audience)
			}
			item := domain.TodoItem{ID: 7, Title: input.Title, Audience: input.Audience}
			return &item, nil
		},
	}
	handler := NewTodoHandler(stub)

	body := `{"title":"renew lease","audience":"members"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/todos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["audience"] != "members" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTodoHandler_Add_MissingTitle(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubTodoService{
		addFn: func(ctx context.Context, input ports.AddTodoInput) (*domain.TodoItem, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/todos", strings.NewReader(`{"detail":"no title"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Add(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTodoHandler_Edit(t *testing.T) {
	e := echo.New()
	stub := &stubTodoService{
		editFn: func(ctx context.Context, input ports.EditTodoInput) error {
			if input.ID != 5 || input.Title != "updated" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	handler := NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/admin/todos/5", strings.NewReader(`{"title":"updated"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTodoHandler_Edit_BadID(t *testing.T) {
	e := echo.New()
	handler := NewTodoHandler(&stubTodoService{})

	req := httptest.NewRequest(http.MethodPut, "/admin/todos/abc", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Edit(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTodoHandler_Toggle_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubTodoService{
		toggleFn: func(ctx context.Context, id int64) error {
			return domain.ErrTodoNotFound
		},
	}
	handler := NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/todos/99/toggle", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := handler.Toggle(c); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoHandler_Delete(t *testing.T) {
	e := echo.New()
	var deleted int64
	stub := &stubTodoService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/admin/todos/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted id = %d, want 3", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
