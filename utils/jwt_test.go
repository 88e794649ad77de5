package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	tok, err := GenerateJWT(7, "alice@example.com")
	require.NoError(t, err)

	claims, err := ValidateJWT(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.InDelta(t, time.Now().Add(TokenTTL).Unix(), claims.ExpiresAt, 5)
}

func TestValidateWrongKey(t *testing.T) {
	t.Setenv("JWT_KEY", "right-secret")
	tok, err := GenerateJWT(1, "alice@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_KEY", "wrong-secret")
	_, err = ValidateJWT(tok)
	require.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	claims := &Claims{
		UserID: 1,
		Email:  "alice@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateJWT(tok)
	require.Error(t, err)
}

func TestValidateMalformed(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	_, err := ValidateJWT("not.a.jwt")
	require.Error(t, err)
}
