package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/api/metrics"
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// LedgerHandler handles the admin payment-grid bulk edit and member notes.
type LedgerHandler struct {
	ledger ports.LedgerService
}

func NewLedgerHandler(ledger ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// BulkSet replaces one class's payment grids from a checkbox submission.
// Member notes included in the same submission are saved alongside.
//
// @Summary      Bulk-edit payment grids for a user class
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        class  path      string          true  "User class"
// @Param        body   body      bulkSetRequest  true  "Checkbox entries and member notes"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/ledger/{class} [post]
func (h *LedgerHandler) BulkSet(c echo.Context) error {
	class, err := domain.ParseUserClass(c.Param("class"))
	if err != nil {
		return err
	}

	var req bulkSetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.ledger.BulkSet(c.Request().Context(), ports.BulkSetInput{
		Class:   class,
		Entries: req.Entries,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.LedgerSavesTotal.WithLabelValues(string(class)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "ledger saved"})
}

// SetNote overwrites one member's note outside of a bulk edit.
//
// @Summary      Overwrite a member note
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        member_id  path      string       true  "Member id"
// @Param        body       body      noteRequest  true  "Note body"
// @Success      200        {object}  messageResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /admin/notes/{member_id} [put]
func (h *LedgerHandler) SetNote(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.ledger.SetNote(c.Request().Context(), c.Param("member_id"), req.Body); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "note saved"})
}
