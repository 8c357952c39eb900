package auth

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified claim set carried by a bearer token.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// StringList returns a string-array claim by name. Only the roles claim is
// modelled; any other name is reported missing.
func (c *Claims) StringList(name string) ([]string, error) {
	if name != claimRoles || c.Roles == nil {
		return nil, newVerificationError(ErrMissingClaim, fmt.Errorf(msgMissingClaim, name))
	}
	return c.Roles, nil
}

// Verifier parses a raw token and checks its signature and temporal claims in
// one step.
type Verifier interface {
	Verify(tokenString string) (*Claims, error)
}

// VerifierConfig describes the key material and claim checks. It is read once
// when the verifier is built.
type VerifierConfig struct {
	Algorithm     string
	Secret        []byte
	PublicKey     []byte
	Issuer        string
	Audience      string
	Leeway        time.Duration
	RequireExpiry bool
}

// JWTVerifier is safe for concurrent use: it holds only immutable key material.
type JWTVerifier struct {
	method jwt.SigningMethod
	key    any
	parser *jwt.Parser
}

func NewJWTVerifier(cfg VerifierConfig) (*JWTVerifier, error) {
	v := &JWTVerifier{}

	switch cfg.Algorithm {
	case jwt.SigningMethodHS256.Alg():
		if len(cfg.Secret) == 0 {
			return nil, errors.New("HS256 requires a shared secret")
		}
		v.method = jwt.SigningMethodHS256
		key := make([]byte, len(cfg.Secret))
		copy(key, cfg.Secret)
		v.key = key
	case jwt.SigningMethodEdDSA.Alg():
		key, err := parseEdPublicKey(cfg.PublicKey)
		if err != nil {
			return nil, err
		}
		v.method = jwt.SigningMethodEdDSA
		v.key = key
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	var options []jwt.ParserOption
	if cfg.Leeway > 0 {
		options = append(options, jwt.WithLeeway(cfg.Leeway))
	}
	if cfg.RequireExpiry {
		options = append(options, jwt.WithExpirationRequired())
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}
	v.parser = jwt.NewParser(options...)

	return v, nil
}

// Verify returns the verified claims or a *VerificationError. Subject and roles
// are required; a token without either is rejected.
func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := v.parser.ParseWithClaims(tokenString, &Claims{}, v.keyFunc)
	if err != nil {
		return nil, classify(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, newVerificationError(ErrTokenMalformed, jwt.ErrTokenInvalidClaims)
	}

	if claims.Subject == "" {
		return nil, newVerificationError(ErrMissingClaim, fmt.Errorf(msgMissingClaim, claimSubject))
	}
	if _, err := claims.StringList(claimRoles); err != nil {
		return nil, err
	}

	return claims, nil
}

func (v *JWTVerifier) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != v.method.Alg() {
		return nil, fmt.Errorf("%w: "+msgUnexpectedSigningMethod, ErrTokenUnsupportedAlgorithm, token.Header["alg"])
	}
	return v.key, nil
}

func parseEdPublicKey(key []byte) (ed25519.PublicKey, error) {
	if len(key) == ed25519.PublicKeySize {
		return ed25519.PublicKey(append([]byte(nil), key...)), nil
	}
	parsed, err := jwt.ParseEdPublicKeyFromPEM(key)
	if err != nil {
		return nil, errors.New("invalid ed25519 public key")
	}
	edKey, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("invalid ed25519 public key type")
	}
	return edKey, nil
}
