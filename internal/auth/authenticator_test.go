package auth

import (
	"testing"

	apperrors "fleet-service/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(token string) (*Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Claims), args.Error(1)
}

func TestAuthenticate_NoBearerCredentials(t *testing.T) {
	headers := []string{
		"",
		"Basic dXNlcjpwYXNz",
		"bearer abc.def.ghi",
		"BEARER abc.def.ghi",
		"Bearer",
		"Bearerabc.def.ghi",
		" Bearer abc.def.ghi",
	}

	verifier := new(MockVerifier)
	authenticator := NewAuthenticator(verifier)

	for _, header := range headers {
		result := authenticator.Authenticate(header)
		assert.Equal(t, OutcomeUnauthenticated, result.Outcome, "header %q", header)
		assert.Nil(t, result.Principal)
		assert.NoError(t, result.Err)
	}

	verifier.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthenticate_EmptyTokenAfterPrefixFails(t *testing.T) {
	authenticator := NewAuthenticator(newHS256Verifier(t))

	result := authenticator.Authenticate("Bearer ")
	assert.Equal(t, OutcomeVerificationFailed, result.Outcome)
	assert.Nil(t, result.Principal)
	assert.ErrorIs(t, result.Err, ErrTokenMalformed)
}

func TestAuthenticate_StripsExactPrefix(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("Verify", " tok").Return(&Claims{
		Roles:            []string{"ADMIN"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}, nil)

	result := NewAuthenticator(verifier).Authenticate("Bearer  tok")
	assert.Equal(t, OutcomeAuthenticated, result.Outcome)
	verifier.AssertExpectations(t)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	authenticator := NewAuthenticator(newHS256Verifier(t))
	token := signHS256(t, testSecret, validClaims("u1", "ADMIN", "DRIVER"))

	result := authenticator.Authenticate("Bearer " + token)
	require.Equal(t, OutcomeAuthenticated, result.Outcome)
	require.NoError(t, result.Err)

	assert.Equal(t, "u1", result.Principal.Subject)
	assert.ElementsMatch(t, []Authority{"ADMIN", "DRIVER"}, result.Principal.Authorities)
	assert.ElementsMatch(t, []string{"ADMIN", "DRIVER"}, result.Principal.AuthorityNames())
}

func TestAuthenticate_DuplicateRolesKept(t *testing.T) {
	authenticator := NewAuthenticator(newHS256Verifier(t))
	token := signHS256(t, testSecret, validClaims("u1", "ADMIN", "ADMIN"))

	result := authenticator.Authenticate("Bearer " + token)
	require.Equal(t, OutcomeAuthenticated, result.Outcome)
	assert.Equal(t, []Authority{"ADMIN", "ADMIN"}, result.Principal.Authorities)
	assert.Equal(t, []string{"ADMIN"}, result.Principal.AuthorityNames())
}

func TestAuthenticate_WrongKeyIsEscalated(t *testing.T) {
	authenticator := NewAuthenticator(newHS256Verifier(t))
	token := signHS256(t, []byte("another-secret-another-secret-xx"), validClaims("u1", "ADMIN"))

	result := authenticator.Authenticate("Bearer " + token)
	assert.Equal(t, OutcomeVerificationFailed, result.Outcome)
	assert.Nil(t, result.Principal)
	assert.ErrorIs(t, result.Err, ErrTokenSignatureInvalid)
	assert.ErrorIs(t, result.Err, apperrors.ErrTokenVerification)
}

func TestAuthenticate_MissingRolesFails(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("Verify", "tok").Return(&Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}, nil)

	result := NewAuthenticator(verifier).Authenticate("Bearer tok")
	assert.Equal(t, OutcomeVerificationFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrMissingClaim)
}

func TestAuthenticate_MissingSubjectFails(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("Verify", "tok").Return(&Claims{Roles: []string{"ADMIN"}}, nil)

	result := NewAuthenticator(verifier).Authenticate("Bearer tok")
	assert.Equal(t, OutcomeVerificationFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrMissingClaim)
}

func TestAuthenticate_UnclassifiedVerifierErrorIsMalformed(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("Verify", "tok").Return(nil, assert.AnError)

	result := NewAuthenticator(verifier).Authenticate("Bearer tok")
	assert.Equal(t, OutcomeVerificationFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, ErrTokenMalformed)
	assert.ErrorIs(t, result.Err, assert.AnError)
	assert.Equal(t, ErrTokenMalformed.Error(), FailureKind(result.Err))
}

func TestAuthenticate_Idempotent(t *testing.T) {
	authenticator := NewAuthenticator(newHS256Verifier(t))
	header := "Bearer " + signHS256(t, testSecret, validClaims("u1", "ADMIN", "DRIVER"))

	first := authenticator.Authenticate(header)
	second := authenticator.Authenticate(header)

	require.Equal(t, OutcomeAuthenticated, first.Outcome)
	assert.Equal(t, first, second)
	assert.NotSame(t, first.Principal, second.Principal)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "unauthenticated", OutcomeUnauthenticated.String())
	assert.Equal(t, "authenticated", OutcomeAuthenticated.String())
	assert.Equal(t, "verification_failed", OutcomeVerificationFailed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
