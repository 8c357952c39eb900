package handler

import (
	"context"
	"net/http"
	"time"

	"fleet-service/internal/auth"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

type MeResponse struct {
	Subject     string   `json:"subject"`
	Authorities []string `json:"authorities"`
}

// Me echoes the principal installed by the authentication stage.
func Me(c echo.Context) error {
	principal, err := auth.GetPrincipal(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MeResponse{
		Subject:     principal.Subject,
		Authorities: principal.AuthorityNames(),
	})
}

// Health reports ok when every checker answers within the timeout.
func Health(checkers ...HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{jsonKeyStatus: statusFailing})
			}
		}

		return c.JSON(http.StatusOK, map[string]string{jsonKeyStatus: statusOK})
	}
}
