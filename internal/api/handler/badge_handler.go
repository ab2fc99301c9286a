package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// BadgeHandler handles the admin badge CRUD.
type BadgeHandler struct {
	badges ports.BadgeService
}

func NewBadgeHandler(badges ports.BadgeService) *BadgeHandler {
	return &BadgeHandler{badges: badges}
}

// List returns all badges grouped by member, plus the selectable icon set.
//
// @Summary      List badges grouped by member
// @Tags         badges
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  listBadgesResponse
// @Router       /admin/badges [get]
func (h *BadgeHandler) List(c echo.Context) error {
	grouped, err := h.badges.ListByMember(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listBadgesResponse{
		Badges: grouped,
		Icons:  domain.BadgeIcons[:],
	})
}

// Add awards a badge to a member.
//
// @Summary      Add a badge
// @Tags         badges
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      addBadgeRequest  true  "Badge details"
// @Success      201   {object}  domain.Badge
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/badges [post]
func (h *BadgeHandler) Add(c echo.Context) error {
	var req addBadgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	badge, err := h.badges.Add(c.Request().Context(), ports.AddBadgeInput{
		MemberID:    req.MemberID,
		MissionName: req.MissionName,
		IconType:    req.IconType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, badge)
}

// Update rewrites a badge's mission name and icon.
//
// @Summary      Update a badge
// @Tags         badges
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int                 true  "Badge id"
// @Param        body  body      updateBadgeRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/badges/{id} [put]
func (h *BadgeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateBadgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.badges.Update(c.Request().Context(), ports.UpdateBadgeInput{
		ID:          id,
		MissionName: req.MissionName,
		IconType:    req.IconType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "badge updated"})
}

// Delete removes one badge.
//
// @Summary      Delete a badge
// @Tags         badges
// @Produce      json
// @Security     CookieAuth
// @Param        id  path      int  true  "Badge id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/badges/{id} [delete]
func (h *BadgeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.badges.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "badge deleted"})
}
