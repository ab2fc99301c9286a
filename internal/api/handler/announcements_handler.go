package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/core/ports"
)

const defaultAnnouncementCount = 20

// AnnouncementsHandler proxies the public support-programme announcements
// feed. The upstream payload is passed through verbatim.
type AnnouncementsHandler struct {
	client ports.AnnouncementsClient
}

func NewAnnouncementsHandler(client ports.AnnouncementsClient) *AnnouncementsHandler {
	return &AnnouncementsHandler{client: client}
}

// List fetches a page of announcements.
//
// @Summary      List support-programme announcements
// @Tags         announcements
// @Produce      json
// @Param        count  query     int  false  "Total results to fetch (default 20)"
// @Success      200    {object}  object
// @Failure      502    {object}  errorResponse
// @Failure      503    {object}  errorResponse
// @Router       /announcements [get]
func (h *AnnouncementsHandler) List(c echo.Context) error {
	count := defaultAnnouncementCount
	if raw := c.QueryParam("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			count = n
		}
	}

	payload, err := h.client.Fetch(c.Request().Context(), ports.AnnouncementsQuery{
		Count:     count,
		PageIndex: 1,
		PageUnit:  10,
	})
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}
