package auth

import (
	"context"

	apperrors "fleet-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// Authority is a granted permission label, one per role claim.
type Authority string

// Principal is the authenticated caller for a single request. It carries no
// credential material.
type Principal struct {
	Subject     string
	Authorities []Authority
}

// NewPrincipal maps each role to one authority of the same name. Order and
// duplicates are preserved.
func NewPrincipal(subject string, roles []string) *Principal {
	authorities := make([]Authority, 0, len(roles))
	for _, role := range roles {
		authorities = append(authorities, Authority(role))
	}
	return &Principal{
		Subject:     subject,
		Authorities: authorities,
	}
}

func (p *Principal) HasAuthority(authority Authority) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

func (p *Principal) HasAnyAuthority(authorities ...Authority) bool {
	for _, authority := range authorities {
		if p.HasAuthority(authority) {
			return true
		}
	}
	return false
}

// AuthorityNames returns the distinct authority names.
func (p *Principal) AuthorityNames() []string {
	seen := make(map[Authority]struct{}, len(p.Authorities))
	names := make([]string, 0, len(p.Authorities))
	for _, a := range p.Authorities {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		names = append(names, string(a))
	}
	return names
}

type principalContextKey struct{}

// WithPrincipal returns a child context carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal installed for the request, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	return p, ok && p != nil
}

func setPrincipal(c echo.Context, p *Principal) {
	c.Set(ContextKeyPrincipal, p)
	c.Set(ContextKeyAuthType, AuthTypeJWT)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), p)))
}

func GetPrincipal(c echo.Context) (*Principal, error) {
	raw := c.Get(ContextKeyPrincipal)
	if raw == nil {
		return nil, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	p, ok := raw.(*Principal)
	if !ok || p == nil {
		return nil, apperrors.InternalServer(msgInvalidPrincipalCtx, nil)
	}

	return p, nil
}

func GetAuthType(c echo.Context) AuthType {
	authType := c.Get(ContextKeyAuthType)
	if authType == nil {
		return ""
	}

	t, ok := authType.(AuthType)
	if !ok {
		return ""
	}

	return t
}
