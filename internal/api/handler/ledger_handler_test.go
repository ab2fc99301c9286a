package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

type stubLedgerService struct {
	bulkSetFn func(ctx context.Context, input ports.BulkSetInput) error
	setNoteFn func(ctx context.Context, memberID, body string) error
}

func (s *stubLedgerService) GetYear(userID string, year int) domain.YearGrid {
	return domain.YearGrid{}
}

func (s *stubLedgerService) UserGrids(userID string) map[int]domain.YearGrid {
	return nil
}

func (s *stubLedgerService) ClassGrids(class domain.UserClass) map[string]map[int]domain.YearGrid {
	return nil
}

func (s *stubLedgerService) BulkSet(ctx context.Context, input ports.BulkSetInput) error {
	return s.bulkSetFn(ctx, input)
}

func (s *stubLedgerService) SetNote(ctx context.Context, memberID, body string) error {
	return s.setNoteFn(ctx, memberID, body)
}

func TestLedgerHandler_BulkSet(t *testing.T) {
	e := echo.New()
	stub := &stubLedgerService{
		bulkSetFn: func(ctx context.Context, input ports.BulkSetInput) error {
			if input.Class != domain.ClassMember {
				t.Fatalf("unexpected class: %s", input.Class)
			}
			if !input.Entries["integlab_2025_0"] || len(input.Entries) != 2 {
				t.Fatalf("entries not forwarded: %+v", input.Entries)
			}
			if input.Notes["integlab"] != "paid in cash" {
				t.Fatalf("notes not forwarded: %+v", input.Notes)
			}
			return nil
		},
	}
	handler := NewLedgerHandler(stub)

	body := `{"entries":{"integlab_2025_0":true,"choiworks_2025_3":true},"notes":{"integlab":"paid in cash"}}`
	req := httptest.NewRequest(http.MethodPost, "/admin/ledger/members", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("class")
	c.SetParamValues("members")

	if err := handler.BulkSet(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLedgerHandler_BulkSet_UnknownClass(t *testing.T) {
	e := echo.New()
	handler := NewLedgerHandler(&stubLedgerService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/ledger/ghosts", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("class")
	c.SetParamValues("ghosts")

	if err := handler.BulkSet(c); !errors.Is(err, domain.ErrUnknownUserClass) {
		t.Fatalf("expected ErrUnknownUserClass, got %v", err)
	}
}

func TestLedgerHandler_BulkSet_BadPayload(t *testing.T) {
	e := echo.New()
	handler := NewLedgerHandler(&stubLedgerService{
		bulkSetFn: func(ctx context.Context, input ports.BulkSetInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/ledger/members", strings.NewReader(`{"entries":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("class")
	c.SetParamValues("members")

	err := handler.BulkSet(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLedgerHandler_SetNote(t *testing.T) {
	e := echo.New()
	stub := &stubLedgerService{
		setNoteFn: func(ctx context.Context, memberID, body string) error {
			if memberID != "doddle" || body != "second tranche pending" {
				t.Fatalf("unexpected args: %s %q", memberID, body)
			}
			return nil
		},
	}
	handler := NewLedgerHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/admin/notes/doddle", strings.NewReader(`{"body":"second tranche pending"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("member_id")
	c.SetParamValues("doddle")

	if err := handler.SetNote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLedgerHandler_SetNote_UnknownMember(t *testing.T) {
	e := echo.New()
	stub := &stubLedgerService{
		setNoteFn: func(ctx context.Context, memberID, body string) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewLedgerHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/admin/notes/ghost", strings.NewReader(`{"body":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("member_id")
	c.SetParamValues("ghost")

	if err := handler.SetNote(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
