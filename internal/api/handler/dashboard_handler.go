package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/core/ports"
)

// DashboardHandler serves the role-dependent dashboard overview.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Overview returns the caller's dashboard. Admins get every class table,
// all notes, badges and login history; user classes get their own grids.
// An absent or unparsable ?year= falls back to the service default.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Security     CookieAuth
// @Param        year  query     int  false  "Selected ledger year"
// @Success      200   {object}  overviewResponse
// @Failure      401   {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	year := 0
	if raw := c.QueryParam("year"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			year = n
		}
	}

	overview, err := h.dashboard.Overview(c.Request().Context(), ports.OverviewInput{
		UserID: userID,
		Role:   role,
		Year:   year,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOverviewResponse(overview))
}
