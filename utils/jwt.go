package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long a session token stays valid after issuance. There is
// no revocation before expiry; signing out is purely client-side.
const TokenTTL = time.Hour

// Claims carried by a session token: the user's id and email plus the
// standard expiry fields.
type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_KEY"))
}

func GenerateJWT(userID int, email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(TokenTTL).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "pc-store",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
