package http

import (
	"errors"
	"fmt"
	"net/http"

	"fleet-service/internal/auth"
	"fleet-service/internal/http/handler"
	"fleet-service/internal/http/middleware"
	apperrors "fleet-service/pkg/errors"
	applog "fleet-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	jsonKeyError     = "error"
	jsonKeyRequestID = "request_id"
	unknownRequestID = "unknown"
)

// NewErrorHandler returns an echo.HTTPErrorHandler that maps sentinel errors to
// status codes, hides server-side detail, and logs with request context.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var message string

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		} else {
			code, message = handler.MapToPublicError(err)
		}

		requestID := middleware.GetRequestID(c)
		if requestID == "" {
			requestID = unknownRequestID
		}

		fields := []zap.Field{
			zap.String(jsonKeyRequestID, requestID),
			zap.Int("status", code),
			applog.Error(err),
		}
		if errors.Is(err, apperrors.ErrTokenVerification) {
			fields = append(fields, zap.String("auth_failure", auth.FailureKind(err)))
		}

		if code >= http.StatusInternalServerError {
			logger.Error("internal_server_error", fields...)
			message = http.StatusText(http.StatusInternalServerError)
		} else {
			logger.Debug("client_error", fields...)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]string{
				jsonKeyError:     message,
				jsonKeyRequestID: requestID,
			})
		}
		if err != nil {
			logger.Error("error_response_failed", zap.Error(err))
		}
	}
}
