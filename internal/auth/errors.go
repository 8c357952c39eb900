package auth

import (
	"errors"
	"fmt"

	apperrors "fleet-service/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Failure kinds. Every VerificationError matches exactly one of these with
// errors.Is, and all of them match apperrors.ErrTokenVerification.
var (
	ErrTokenMalformed            = errors.New("token malformed")
	ErrTokenSignatureInvalid     = errors.New("token signature invalid")
	ErrTokenUnsupportedAlgorithm = errors.New("token algorithm not supported")
	ErrTokenExpired              = errors.New("token expired")
	ErrTokenNotValidYet          = errors.New("token not valid yet")
	ErrTokenInvalidIssuer        = errors.New("token issuer invalid")
	ErrTokenInvalidAudience      = errors.New("token audience invalid")
	ErrMissingClaim              = errors.New("token missing required claim")
)

// VerificationError is returned when a presented bearer token cannot be trusted.
type VerificationError struct {
	Kind error
	Err  error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *VerificationError) Unwrap() []error {
	errs := []error{apperrors.ErrTokenVerification, e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newVerificationError(kind, err error) *VerificationError {
	return &VerificationError{Kind: kind, Err: err}
}

// classify maps a parser error from golang-jwt onto a failure kind. Order
// matters: the parser wraps several sentinels for some failures.
func classify(err error) *VerificationError {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr
	}

	switch {
	case errors.Is(err, ErrTokenUnsupportedAlgorithm):
		return newVerificationError(ErrTokenUnsupportedAlgorithm, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return newVerificationError(ErrMissingClaim, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return newVerificationError(ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return newVerificationError(ErrTokenNotValidYet, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return newVerificationError(ErrTokenInvalidIssuer, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return newVerificationError(ErrTokenInvalidAudience, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return newVerificationError(ErrTokenSignatureInvalid, err)
	default:
		return newVerificationError(ErrTokenMalformed, err)
	}
}

// FailureKind returns a short label for logging the kind of a verification error.
func FailureKind(err error) string {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Kind.Error()
	}
	return "unknown"
}
