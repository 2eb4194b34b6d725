package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// CORS returns a CORS middleware with the given config.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	allowOrigins := strings.Join(cfg.AllowOrigins, ",")
	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			res.Header().Set(echo.HeaderAccessControlAllowOrigin, allowOrigins)
			res.Header().Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			res.Header().Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
