package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/jolteer/pc-store/utils"
)

type contextKey string

const claimsKey = contextKey("claims")

// RequireAuth guards a handler behind a bearer token. A missing header, a
// malformed header and a failed verification are indistinguishable to the
// caller: all of them yield 403.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenHeader := r.Header.Get("Authorization")
		if tokenHeader == "" {
			log.Printf("Missing Authorization header on %s %s", r.Method, r.URL.Path)
			utils.WriteError(w, http.StatusForbidden, "Invalid or missing token")
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			log.Printf("Invalid Authorization header format on %s %s", r.Method, r.URL.Path)
			utils.WriteError(w, http.StatusForbidden, "Invalid or missing token")
			return
		}

		claims, err := utils.ValidateJWT(tokenParts[1])
		if err != nil {
			log.Printf("Invalid or expired token: %v", err)
			utils.WriteError(w, http.StatusForbidden, "Invalid or missing token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom returns the verified token claims placed by RequireAuth.
func ClaimsFrom(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*utils.Claims)
	return claims, ok
}
