package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/dto"
	"storefront/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.GetProducts(ctx)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDParam(c)
	if err != nil {
		return err
	}

	product, err := h.productService.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var input dto.ProductInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.productService.CreateProduct(ctx, &input)
	if err != nil {
		return err
	}

	return respondMessage(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDParam(c)
	if err != nil {
		return err
	}

	var input dto.ProductInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.productService.UpdateProduct(ctx, productID, &input)
	if err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDParam(c)
	if err != nil {
		return err
	}

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "Product deleted successfully", nil)
}

func productIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return uint(id), nil
}
