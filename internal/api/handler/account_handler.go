package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/api/metrics"
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// AccountHandler handles the admin account CRUD for all four user classes.
// The class is a path segment; an unknown class is a 404, not a 400.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List returns every account of one class in display order.
//
// @Summary      List accounts of a user class
// @Tags         accounts
// @Produce      json
// @Security     CookieAuth
// @Param        class  path      string  true  "User class (members|partners|backers|customers)"
// @Success      200    {object}  listAccountsResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/users/{class} [get]
func (h *AccountHandler) List(c echo.Context) error {
	class, err := domain.ParseUserClass(c.Param("class"))
	if err != nil {
		return err
	}

	users, err := h.accounts.List(c.Request().Context(), class)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAccountsResponse{
		Class: string(class),
		Users: users,
	})
}

// Add creates one account. Duplicate ids are silently ignored so a resubmitted
// form never errors.
//
// @Summary      Add an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        class  path      string             true  "User class"
// @Param        body   body      addAccountRequest  true  "Account details"
// @Success      201    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/users/{class} [post]
func (h *AccountHandler) Add(c echo.Context) error {
	class, err := domain.ParseUserClass(c.Param("class"))
	if err != nil {
		return err
	}

	var req addAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.accounts.Add(c.Request().Context(), ports.AddAccountInput{
		Class:      class,
		ID:         req.ID,
		Credential: req.Credential,
		SortOrder:  req.SortOrder,
		Equity:     req.Equity,
	})
	if err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues(string(class), "add").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "account added"})
}

// Update patches one account; absent fields keep their stored values.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        class  path      string                true  "User class"
// @Param        id     path      string                true  "Account id"
// @Param        body   body      updateAccountRequest  true  "Fields to change"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/users/{class}/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	class, err := domain.ParseUserClass(c.Param("class"))
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.accounts.Update(c.Request().Context(), ports.UpdateAccountInput{
		Class:      class,
		ID:         c.Param("id"),
		Credential: req.Credential,
		SortOrder:  req.SortOrder,
		Equity:     req.Equity,
	})
	if err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues(string(class), "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "account updated"})
}

// Delete removes one account and, for members, the dependent note and badges.
//
// @Summary      Delete an account
// @Tags         accounts
// @Produce      json
// @Security     CookieAuth
// @Param        class  path      string  true  "User class"
// @Param        id     path      string  true  "Account id"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  errorResponse
// @Router       /admin/users/{class}/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	class, err := domain.ParseUserClass(c.Param("class"))
	if err != nil {
		return err
	}

	if err := h.accounts.Delete(c.Request().Context(), class, c.Param("id")); err != nil {
		return err
	}
	metrics.AccountMutationsTotal.WithLabelValues(string(class), "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}
