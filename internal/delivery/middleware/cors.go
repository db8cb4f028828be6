package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

var (
	corsAllowHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization}
	corsAllowMethods = []string{
		http.MethodOptions,
		http.MethodPost,
		http.MethodGet,
		http.MethodDelete,
		http.MethodPut,
	}
)

// CORS allows browser clients from any origin. The allow headers are written
// on every response, also for callers that send no Origin header, and
// preflight requests get 204.
func CORS() echo.MiddlewareFunc {
	preflight := echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: corsAllowHeaders,
		AllowMethods: corsAllowMethods,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		handler := preflight(next)

		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, "*")
			header.Set(echo.HeaderAccessControlAllowHeaders, strings.Join(corsAllowHeaders, ","))
			header.Set(echo.HeaderAccessControlAllowMethods, strings.Join(corsAllowMethods, ","))

			if c.Request().Method == http.MethodOptions && c.Request().Header.Get(echo.HeaderOrigin) == "" {
				return c.NoContent(http.StatusNoContent)
			}

			return handler(c)
		}
	}
}
