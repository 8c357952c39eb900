package handler

import (
	"errors"
	"net/http"

	apperrors "fleet-service/pkg/errors"
)

// MapToPublicError maps internal errors to public status codes and messages.
// Client errors keep the AppError message; everything else is generic.
func MapToPublicError(err error) (int, string) {
	status, fallback := statusFor(err)
	if status >= http.StatusInternalServerError {
		return status, fallback
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return status, appErr.Message
	}
	return status, fallback
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrTokenVerification):
		return http.StatusInternalServerError, "internal server error"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "resource conflict"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, "bad request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
