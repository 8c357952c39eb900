package auth

const (
	ContextKeyPrincipal = "principal"
	ContextKeyAuthType  = "auth_type"

	jsonKeyError = "error"

	headerAuthorization = "Authorization"

	// bearerPrefix is matched case-sensitively, trailing space included.
	bearerPrefix = "Bearer "

	claimSubject = "sub"
	claimRoles   = "roles"
)

const (
	msgUserNotAuthenticated    = "user not authenticated"
	msgInsufficientAuthorities = "insufficient authorities"
	msgInvalidPrincipalCtx     = "invalid principal in context"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgMissingClaim            = "missing required claim %q"
	msgTokenRejected           = "bearer token rejected"
)

type AuthType string

const (
	AuthTypeJWT AuthType = "jwt"
)

// AuthorityAdmin is required for every write route.
const AuthorityAdmin Authority = "ADMIN"
