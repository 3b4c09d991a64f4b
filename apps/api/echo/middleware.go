package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// corsMiddleware allows cross-origin requests from the course pages and
// answers preflight OPTIONS with an empty 200 before any handler runs.
func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Response().Header()
		header.Set(echo.HeaderAccessControlAllowOrigin, "*")
		header.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
		header.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")

		if ctx.Request().Method == http.MethodOptions {
			return ctx.NoContent(http.StatusOK)
		}
		return next(ctx)
	}
}
