package auth

import (
	apperrors "fleet-service/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Middleware struct {
	authenticator *Authenticator
	logger        *zap.Logger
}

func NewMiddleware(authenticator *Authenticator, logger *zap.Logger) *Middleware {
	return &Middleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Authenticate runs once per request. Requests without bearer credentials pass
// through anonymously; authorization rules further down decide whether that is
// allowed. A rejected token aborts the request with an escalated error.
func (m *Middleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result := m.authenticator.Authenticate(c.Request().Header.Get(headerAuthorization))

			switch result.Outcome {
			case OutcomeAuthenticated:
				setPrincipal(c, result.Principal)
			case OutcomeVerificationFailed:
				m.logger.Warn("bearer_token_rejected",
					zap.String("kind", FailureKind(result.Err)),
					zap.String("path", c.Path()),
					zap.String("remote_ip", c.RealIP()),
				)
				return apperrors.InternalServer(msgTokenRejected, result.Err)
			}

			return next(c)
		}
	}
}
