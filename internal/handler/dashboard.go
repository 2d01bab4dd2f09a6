package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.dashboardService.Stats(ctx)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, stats)
}

func (h *DashboardHandler) RevenueTrend(c echo.Context) error {
	ctx := c.Request().Context()

	months, _ := strconv.Atoi(c.QueryParam("months"))

	trend, err := h.dashboardService.RevenueTrend(ctx, months)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, trend)
}

func (h *DashboardHandler) TopProducts(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.dashboardService.TopProducts(ctx, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, products)
}

func (h *DashboardHandler) OrderStatusDistribution(c echo.Context) error {
	ctx := c.Request().Context()

	distribution, err := h.dashboardService.OrderStatusDistribution(ctx)
	if err != nil {
		return err
	}

	var total int64
	for _, slice := range distribution {
		total += slice.Count
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"data":        distribution,
		"totalOrders": total,
		"message":     "Order status distribution fetched successfully",
	})
}
