package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yottalab/membership-system/internal/api/metrics"
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contact ports.ContactService
}

func NewContactHandler(contact ports.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit accepts one contact submission and queues the notification and
// auto-reply mails. Honeypot hits are reported as accepted so bots cannot
// tell they were filtered.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.contact.Submit(c.Request().Context(), domain.ContactSubmission{
		Company:    req.Company,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Location:   req.Location,
		Revenue:    req.Revenue,
		Employees:  req.Employees,
		Industry:   req.Industry,
		Years:      req.Years,
		Interest:   req.Interest,
		CompanyURL: req.CompanyURL,
		Website:    req.Website,
	}, c.RealIP())
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			metrics.ContactSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		} else {
			metrics.ContactSubmissionsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusAccepted, messageResponse{Message: "contact request received"})
}
