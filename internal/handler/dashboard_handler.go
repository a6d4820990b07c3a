package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"machinehub/internal/service"
)

// DashboardHandler serves role dashboards and admin statistics.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Dashboard godoc
// @Summary Role specific dashboard
// @Description Suppliers get their machines and received enquiries, buyers their sent enquiries, admins the statistics.
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	d, err := h.dashboard.ForUser(c.Request().Context(), actor.User)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, d)
}

// AdminStats godoc
// @Summary Marketplace statistics
// @Tags admin
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *DashboardHandler) AdminStats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, stats)
}
