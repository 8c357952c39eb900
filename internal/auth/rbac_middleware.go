package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuthenticated rejects anonymous requests with 401.
func (m *Middleware) RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := GetPrincipal(c); err != nil {
				return respondError(c, http.StatusUnauthorized, msgUserNotAuthenticated)
			}
			return next(c)
		}
	}
}

// RequireAnyAuthority rejects anonymous requests with 401 and callers holding
// none of the listed authorities with 403.
func (m *Middleware) RequireAnyAuthority(authorities ...Authority) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := GetPrincipal(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgUserNotAuthenticated)
			}

			if !principal.HasAnyAuthority(authorities...) {
				return respondError(c, http.StatusForbidden, msgInsufficientAuthorities)
			}

			return next(c)
		}
	}
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}
