package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("k8Jq2mVx9Lp4Rt7Wz1Nc6Bf3Hy5Gd0Sa")

func newHS256Verifier(t *testing.T) *JWTVerifier {
	t.Helper()
	v, err := NewJWTVerifier(VerifierConfig{
		Algorithm:     "HS256",
		Secret:        testSecret,
		RequireExpiry: true,
	})
	require.NoError(t, err)
	return v
}

func validClaims(subject string, roles ...string) jwt.MapClaims {
	if roles == nil {
		roles = []string{}
	}
	return jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func signHS256(t *testing.T, secret []byte, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func newEdKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub, priv
}
