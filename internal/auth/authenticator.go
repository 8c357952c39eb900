package auth

import "strings"

// Outcome is the result of authenticating one request.
type Outcome int

const (
	// OutcomeUnauthenticated means no bearer credentials were presented.
	OutcomeUnauthenticated Outcome = iota
	OutcomeAuthenticated
	// OutcomeVerificationFailed means a bearer token was presented and rejected.
	OutcomeVerificationFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeVerificationFailed:
		return "verification_failed"
	default:
		return "unknown"
	}
}

// Result is consumed by the pipeline stage that called Authenticate. Principal
// is set only for OutcomeAuthenticated and Err only for OutcomeVerificationFailed.
type Result struct {
	Outcome   Outcome
	Principal *Principal
	Err       error
}

type Authenticator struct {
	verifier Verifier
}

func NewAuthenticator(verifier Verifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

// Authenticate inspects the raw Authorization header value. A missing header or
// one without the "Bearer " prefix is not an error; anything after the prefix
// must verify, including an empty string.
func (a *Authenticator) Authenticate(authorizationHeader string) Result {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return Result{Outcome: OutcomeUnauthenticated}
	}

	token := authorizationHeader[len(bearerPrefix):]

	claims, err := a.verifier.Verify(token)
	if err != nil {
		return Result{Outcome: OutcomeVerificationFailed, Err: classify(err)}
	}

	roles, err := claims.StringList(claimRoles)
	if err != nil {
		return Result{Outcome: OutcomeVerificationFailed, Err: classify(err)}
	}
	if claims.Subject == "" {
		return Result{Outcome: OutcomeVerificationFailed, Err: newVerificationError(ErrMissingClaim, nil)}
	}

	return Result{
		Outcome:   OutcomeAuthenticated,
		Principal: NewPrincipal(claims.Subject, roles),
	}
}
