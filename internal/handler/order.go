package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"storefront/internal/dto"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	orders, err := h.orderService.CreateOrders(ctx, middleware.UserID(c), &req)
	if err != nil {
		return err
	}

	return respondMessage(c, http.StatusCreated, "Orders created successfully", orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderService.GetOrder(ctx, uint(orderID), middleware.UserID(c))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}

	filter := repository.OrderFilter{
		Status: model.OrderStatus(c.QueryParam("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
	}

	start, okStart := parseDate(c.QueryParam("startDate"))
	end, okEnd := parseDate(c.QueryParam("endDate"))
	if okStart && okEnd {
		// endDate is inclusive, stretch it to the end of that day.
		end = end.AddDate(0, 0, 1).Add(-time.Second)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	list, err := h.orderService.ListOrders(ctx, filter, page, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, list)
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
