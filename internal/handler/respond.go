package handler

import "github.com/labstack/echo/v4"

// Responses keep the {success, data} envelope the storefront and admin UI
// already consume.
func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, echo.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, echo.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}
